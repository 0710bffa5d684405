package get_package

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers"
	"github.com/m04kA/RhuMuda-BookingService/internal/service/packages"
)

const (
	msgNotFound = "package not found"
)

type Handler struct {
	service PackageService
	logger  Logger
}

func NewHandler(service PackageService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/packages/{packageId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["packageId"]

	pkg, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, packages.ErrPackageNotFound) {
			h.logger.Warn("GET /packages/{id} - Package not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /packages/{id} - Failed to get package: id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, pkg)
}
