package commands

import (
	"github.com/spf13/cobra"

	"github.com/m04kA/RhuMuda-BookingService/cmd/inquiry/handlers"
)

// Status returns the command showing a saved booking.
func Status(conn *handlers.Connection) *cobra.Command {
	return &cobra.Command{
		Use:   "status <booking-id>",
		Short: "Show a booking confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Status(cmd.Context(), conn, args[0])
		},
	}
}
