package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
	"github.com/m04kA/RhuMuda-BookingService/internal/integrations/bookingapi"
)

// Status prints the confirmation card of a saved booking.
func Status(ctx context.Context, conn *Connection, bookingID string) error {
	bookingID = strings.ToUpper(strings.TrimSpace(bookingID))
	if !domain.IsValidBookingID(bookingID) {
		return fmt.Errorf("invalid booking id %q", bookingID)
	}

	log := conn.logger()
	conf, err := conn.client(log).GetBooking(ctx, bookingID)
	if errors.Is(err, bookingapi.ErrBookingNotFound) {
		return fmt.Errorf("booking %s not found", bookingID)
	}
	if err != nil {
		return fmt.Errorf("failed to load booking: %w", err)
	}

	fmt.Print(renderConfirmation(conf))
	return nil
}
