package update_inquiry_step

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers"
	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers/inquiry_view"
	"github.com/m04kA/RhuMuda-BookingService/internal/api/middleware"
	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
	"github.com/m04kA/RhuMuda-BookingService/internal/service/wizard"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNoSession          = "inquiry session is required"
)

type Handler struct {
	step   domain.Step
	now    func() time.Time
	logger Logger
}

// NewHandler обработчик частичного обновления одного шага
func NewHandler(step domain.Step, logger Logger) *Handler {
	return &Handler{
		step:   step,
		now:    time.Now,
		logger: logger,
	}
}

// Handle PUT /inquiry/info, /inquiry/reservation, /inquiry/options
// Передаются только изменяемые поля, обновление атомарно
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	route := "PUT /inquiry/" + h.step.String()

	wz, ok := middleware.GetWizard(r.Context())
	if !ok {
		h.logger.Warn("%s - No session in context", route)
		handlers.RespondUnauthorized(w, msgNoSession)
		return
	}

	if err := h.apply(r, wz); err != nil {
		var de decodeError
		if errors.As(err, &de) {
			h.logger.Warn("%s - Invalid request body: %v", route, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		inquiry_view.RespondWizardError(w, h.logger, route, err)
		return
	}

	st := wz.State()
	fieldErrors := wz.FieldErrors(h.step)

	switch h.step {
	case domain.StepCustomerInfo:
		handlers.RespondJSON(w, http.StatusOK, inquiry_view.NewInfoView(st, fieldErrors))
	case domain.StepReservationDetails:
		handlers.RespondJSON(w, http.StatusOK, inquiry_view.NewReservationView(st, fieldErrors, h.now()))
	default:
		handlers.RespondJSON(w, http.StatusOK, inquiry_view.NewOptionsView(st))
	}
}

type decodeError struct{ err error }

func (e decodeError) Error() string { return e.err.Error() }

func (h *Handler) apply(r *http.Request, wz WizardEditor) error {
	switch h.step {
	case domain.StepCustomerInfo:
		var patch wizard.CustomerInfoPatch
		if err := handlers.DecodeJSON(r, &patch); err != nil {
			return decodeError{err}
		}
		return wz.UpdateCustomerInfo(patch)

	case domain.StepReservationDetails:
		var patch wizard.ReservationPatch
		if err := handlers.DecodeJSON(r, &patch); err != nil {
			return decodeError{err}
		}
		return wz.UpdateReservation(patch)

	default:
		var patch wizard.OptionsPatch
		if err := handlers.DecodeJSON(r, &patch); err != nil {
			return decodeError{err}
		}
		return wz.UpdateOptions(patch)
	}
}
