package commands

import (
	"github.com/spf13/cobra"

	"github.com/m04kA/RhuMuda-BookingService/cmd/inquiry/handlers"
)

// Packages returns the command listing the package catalog.
func Packages(conn *handlers.Connection) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "packages",
		Short: "List charter packages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Packages(cmd.Context(), conn, kind)
		},
	}

	cmd.Flags().StringVar(&kind, "type", "", "Filter by package type (recreation, fishing, boat)")

	return cmd
}
