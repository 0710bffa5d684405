package commands

import (
	"github.com/spf13/cobra"

	"github.com/m04kA/RhuMuda-BookingService/cmd/inquiry/handlers"
	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
)

// Book returns the interactive booking wizard command.
func Book(conn *handlers.Connection) *cobra.Command {
	var search domain.SearchParams

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Start a new booking inquiry",
		Long: `Start a new booking inquiry.

The wizard has three input steps:
  - Customer information
  - Reservation details (jetty, date, passengers, package, add-ons)
  - Other options (alternative dates, remarks)

Leaving the last step submits the booking. Values from the search flags
prefill the reservation step; invalid ones are ignored.
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Book(cmd.Context(), conn, &search)
		},
	}

	cmd.Flags().StringVar(&search.JettyPoint, "jetty", "", "Departure jetty (Rhumuda or Kuala Terengganu)")
	cmd.Flags().StringVar(&search.BookingDate, "date", "", "Booking date, YYYY-MM-DD")
	cmd.Flags().IntVar(&search.Passengers, "passengers", 0, "Number of passengers")

	return cmd
}
