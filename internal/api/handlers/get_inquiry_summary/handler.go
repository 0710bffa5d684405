package get_inquiry_summary

import (
	"net/http"

	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers"
	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers/inquiry_view"
	"github.com/m04kA/RhuMuda-BookingService/internal/api/middleware"
	"github.com/m04kA/RhuMuda-BookingService/internal/service/wizard"
)

const route = "GET /inquiry/summary"

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /inquiry/summary
// 409, пока бронирование не подтверждено
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	wz, ok := middleware.GetWizard(r.Context())
	if !ok {
		inquiry_view.RespondWizardError(w, h.logger, route, wizard.ErrNotConfirmed)
		return
	}

	conf, err := wz.Confirmation()
	if err != nil {
		inquiry_view.RespondWizardError(w, h.logger, route, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, inquiry_view.NewSummaryView(conf))
}
