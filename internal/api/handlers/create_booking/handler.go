package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers"
	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
	createBooking "github.com/m04kA/RhuMuda-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidBookingDate = "booking date must be after today"
	msgDateOutOfRange     = "booking date must be within the next 3 months"
	msgInvalidAltDate     = "alternative dates must be after today"
	msgPackageNotFound    = "package not found"
	msgBookingIDExhausted = "could not allocate a booking number, please retry"
)

type Handler struct {
	useCase BookingCreator
	logger  Logger
}

func NewHandler(useCase BookingCreator, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req domain.BookingPayload
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &req)
	if err != nil {
		email := req.CustomerInfo.Email
		switch {
		case errors.Is(err, createBooking.ErrMissingFields):
			h.logger.Warn("POST /bookings - Missing fields: email=%s, %v", email, err)
			handlers.RespondUnprocessableEntity(w, err.Error())

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: email=%s, %v", email, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: email=%s, %v", email, err)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrDateOutOfRange):
			h.logger.Warn("POST /bookings - Date out of range: email=%s, %v", email, err)
			handlers.RespondBadRequest(w, msgDateOutOfRange)

		case errors.Is(err, createBooking.ErrInvalidAlternativeDate):
			h.logger.Warn("POST /bookings - Invalid alternative date: email=%s, %v", email, err)
			handlers.RespondBadRequest(w, msgInvalidAltDate)

		case errors.Is(err, createBooking.ErrPackageNotFound):
			h.logger.Warn("POST /bookings - Package not found: package=%s", req.ReservationDetails.PackageType)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, createBooking.ErrBookingIDExhausted):
			h.logger.Warn("POST /bookings - Booking id exhausted: email=%s", email)
			handlers.RespondServiceUnavailable(w, msgBookingIDExhausted)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: email=%s, error=%v", email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, total=%.2f",
		result.BookingID, result.TotalAmount)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
