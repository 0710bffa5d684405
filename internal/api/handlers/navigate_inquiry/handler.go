package navigate_inquiry

import (
	"net/http"

	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers"
	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers/inquiry_view"
	"github.com/m04kA/RhuMuda-BookingService/internal/api/middleware"
)

// Action переход визарда
type Action string

const (
	ActionNext    Action = "next"
	ActionBack    Action = "back"
	ActionRestart Action = "restart"
)

const msgNoSession = "inquiry session is required"

type Handler struct {
	action Action
	logger Logger
}

func NewHandler(action Action, logger Logger) *Handler {
	return &Handler{action: action, logger: logger}
}

// Handle POST /inquiry/next, /inquiry/back, /inquiry/restart
// next на шаге other-options отправляет заявку в booking API
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	route := "POST /inquiry/" + string(h.action)

	wz, ok := middleware.GetWizard(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgNoSession)
		return
	}
	sessionID, _ := middleware.GetSessionID(r.Context())

	var err error
	switch h.action {
	case ActionNext:
		_, err = wz.Next(r.Context())
	case ActionBack:
		_, err = wz.Back()
	case ActionRestart:
		wz.Restart()
	}
	if err != nil {
		inquiry_view.RespondWizardError(w, h.logger, route, err)
		return
	}

	st := wz.State()
	h.logger.Info("%s - session=%s, step=%s", route, sessionID, st.ActiveStep)
	handlers.RespondJSON(w, http.StatusOK, inquiry_view.NewStateResponse(sessionID, st))
}
