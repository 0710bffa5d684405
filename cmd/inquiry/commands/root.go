// Package commands defines the inquiry CLI command tree and flag bindings.
// Execution is delegated to the handlers package.
package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/RhuMuda-BookingService/cmd/inquiry/handlers"
)

const (
	defaultAPIURL  = "http://localhost:8080"
	defaultTimeout = 10 * time.Second
)

// Root returns the root command for the inquiry CLI.
func Root() *cobra.Command {
	conn := &handlers.Connection{}

	cmd := &cobra.Command{
		Use:          "inquiry",
		Short:        "Book a RhuMuda boat charter from the terminal",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&conn.APIURL, "api-url", defaultAPIURL, "Booking API base URL")
	cmd.PersistentFlags().DurationVar(&conn.Timeout, "timeout", defaultTimeout, "Booking API request timeout")
	cmd.PersistentFlags().BoolVarP(&conn.Verbose, "verbose", "v", false, "Log booking API calls to stderr")

	cmd.AddCommand(Book(conn))
	cmd.AddCommand(Packages(conn))
	cmd.AddCommand(Status(conn))

	return cmd
}
