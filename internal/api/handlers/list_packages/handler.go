package list_packages

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers"
	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
	"github.com/m04kA/RhuMuda-BookingService/internal/service/packages"
)

const (
	msgInvalidType = "unknown package type, expected recreation, fishing or boat"
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

// Handle GET /api/packages?type= и GET /services/{type}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// тип из пути приоритетнее query параметра
	kind, ok := mux.Vars(r)["type"]
	if !ok {
		kind = r.URL.Query().Get("type")
	}

	pkgs, err := h.service.List(r.Context(), kind)
	if err != nil {
		if errors.Is(err, packages.ErrInvalidKind) {
			h.logger.Warn("GET /packages - Invalid type: %q", kind)
			handlers.RespondBadRequest(w, msgInvalidType)
			return
		}
		h.logger.Error("GET /packages - Failed to list packages: type=%q, error=%v", kind, err)
		handlers.RespondInternalError(w)
		return
	}

	// клиент ожидает массив, а не null
	if pkgs == nil {
		pkgs = []domain.PackageOption{}
	}

	h.logger.Info("GET /packages - Packages retrieved successfully: type=%q, count=%d", kind, len(pkgs))
	handlers.RespondJSON(w, http.StatusOK, pkgs)
}
