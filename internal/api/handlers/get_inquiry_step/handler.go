package get_inquiry_step

import (
	"net/http"
	"time"

	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers"
	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers/inquiry_view"
	"github.com/m04kA/RhuMuda-BookingService/internal/api/middleware"
	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
)

type Handler struct {
	step      domain.Step
	newWizard WizardFactory
	now       func() time.Time
	logger    Logger
}

// NewHandler обработчик чтения одного шага визарда
func NewHandler(step domain.Step, newWizard WizardFactory, logger Logger) *Handler {
	return &Handler{
		step:      step,
		newWizard: newWizard,
		now:       time.Now,
		logger:    logger,
	}
}

// Handle GET /inquiry/info, /inquiry/reservation, /inquiry/options
// Без сессии шаг отображается с пустыми данными
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	wz, ok := middleware.GetWizard(r.Context())
	if !ok {
		wz = h.newWizard()
	}

	if h.step == domain.StepReservationDetails {
		wz.RefreshCatalog(r.Context())
	}

	st := wz.State()
	fieldErrors := wz.FieldErrors(h.step)

	switch h.step {
	case domain.StepCustomerInfo:
		handlers.RespondJSON(w, http.StatusOK, inquiry_view.NewInfoView(st, fieldErrors))
	case domain.StepReservationDetails:
		handlers.RespondJSON(w, http.StatusOK, inquiry_view.NewReservationView(st, fieldErrors, h.now()))
	case domain.StepOtherOptions:
		handlers.RespondJSON(w, http.StatusOK, inquiry_view.NewOptionsView(st))
	default:
		h.logger.Error("GET /inquiry - Handler configured with unsupported step %s", h.step)
		handlers.RespondInternalError(w)
	}
}
