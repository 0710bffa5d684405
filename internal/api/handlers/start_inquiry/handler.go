package start_inquiry

import (
	"errors"
	"net/http"

	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers"
	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers/inquiry_view"
	"github.com/m04kA/RhuMuda-BookingService/internal/api/middleware"
	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
	"github.com/m04kA/RhuMuda-BookingService/internal/infra/storage/session"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgTooManySessions    = "too many active inquiries, please try again later"
)

type Handler struct {
	store     SessionStore
	newWizard WizardFactory
	logger    Logger
}

func NewHandler(store SessionStore, newWizard WizardFactory, logger Logger) *Handler {
	return &Handler{
		store:     store,
		newWizard: newWizard,
		logger:    logger,
	}
}

// Handle POST /inquiry
// Тело необязательно: значения поиска с главной {jettyPoint, bookingDate, passengers}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var search domain.SearchParams
	if err := handlers.DecodeOptionalJSON(r, &search); err != nil {
		h.logger.Warn("POST /inquiry - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	wz := h.newWizard()
	wz.Start(r.Context(), &search)

	id, err := h.store.Create(wz)
	if err != nil {
		if errors.Is(err, session.ErrTooManySessions) {
			h.logger.Warn("POST /inquiry - Session limit reached")
			handlers.RespondServiceUnavailable(w, msgTooManySessions)
			return
		}
		h.logger.Error("POST /inquiry - Failed to create session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /inquiry - Inquiry started: session=%s", id)
	w.Header().Set(middleware.SessionHeader, id)
	handlers.RespondJSON(w, http.StatusCreated, inquiry_view.NewStateResponse(id, wz.State()))
}
