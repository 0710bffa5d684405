package toggle_addon

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers"
	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers/inquiry_view"
	"github.com/m04kA/RhuMuda-BookingService/internal/api/middleware"
)

const (
	route        = "POST /inquiry/reservation/addons/{addOnId}"
	msgNoSession = "inquiry session is required"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle POST /inquiry/reservation/addons/{addOnId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	wz, ok := middleware.GetWizard(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgNoSession)
		return
	}

	id := mux.Vars(r)["addOnId"]
	selected, err := wz.ToggleAddOn(id)
	if err != nil {
		inquiry_view.RespondWizardError(w, h.logger, route, err)
		return
	}

	st := wz.State()
	addOns := st.ReservationDetails.AddOns
	if addOns == nil {
		addOns = []string{}
	}

	handlers.RespondJSON(w, http.StatusOK, ToggleAddOnResponse{
		AddOnID:     id,
		Selected:    selected,
		AddOns:      addOns,
		TotalAmount: st.TotalAmount,
	})
}
