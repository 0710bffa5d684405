package select_package

import (
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers"
	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers/inquiry_view"
	"github.com/m04kA/RhuMuda-BookingService/internal/api/middleware"
	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
)

const (
	route                 = "PUT /inquiry/reservation/package"
	msgInvalidRequestBody = "invalid request body"
	msgMissingPackageID   = "packageId is required"
	msgNoSession          = "inquiry session is required"
)

type Handler struct {
	now    func() time.Time
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{now: time.Now, logger: logger}
}

// Handle PUT /inquiry/reservation/package
// Пакет ищется в загруженном каталоге; если каталог еще не загружен, пробуем загрузить
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	wz, ok := middleware.GetWizard(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgNoSession)
		return
	}

	var req SelectPackageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	id := strings.TrimSpace(req.PackageID)
	if id == "" {
		handlers.RespondBadRequest(w, msgMissingPackageID)
		return
	}

	wz.RefreshCatalog(r.Context())

	pkg, err := wz.SelectPackage(id)
	if err != nil {
		inquiry_view.RespondWizardError(w, h.logger, route, err)
		return
	}

	h.logger.Info("%s - Package selected: id=%s", route, pkg.ID)
	st := wz.State()
	handlers.RespondJSON(w, http.StatusOK,
		inquiry_view.NewReservationView(st, wz.FieldErrors(domain.StepReservationDetails), h.now()))
}
