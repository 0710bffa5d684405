package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers"
	"github.com/m04kA/RhuMuda-BookingService/internal/infra/storage/session"
	"github.com/m04kA/RhuMuda-BookingService/internal/service/wizard"
)

// SessionHeader заголовок с id сессии визарда
const SessionHeader = "X-Session-ID"

const (
	msgMissingSession = "missing " + SessionHeader + " header"
	msgInvalidSession = "invalid session id"
	msgSessionExpired = "session not found or expired, start a new inquiry"
)

type contextKey string

const (
	sessionIDKey contextKey = "sessionID"
	wizardKey    contextKey = "wizard"
)

// SessionStore хранилище сессий визарда
type SessionStore interface {
	Get(id string) (*wizard.Service, error)
}

// Session требует заголовок X-Session-ID и кладет визард сессии в контекст
func Session(store SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(SessionHeader)
			if id == "" {
				handlers.RespondUnauthorized(w, msgMissingSession)
				return
			}

			wz, err := store.Get(id)
			if err != nil {
				switch {
				case errors.Is(err, session.ErrInvalidID):
					handlers.RespondBadRequest(w, msgInvalidSession)
				default:
					handlers.RespondNotFound(w, msgSessionExpired)
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(WithWizard(r.Context(), id, wz)))
		})
	}
}

// OptionalSession как Session, но без сессии запрос проходит дальше без визарда.
// Используется для чтения шагов: без сессии шаг отображается пустым.
func OptionalSession(store SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(SessionHeader)
			if id != "" {
				if wz, err := store.Get(id); err == nil {
					r = r.WithContext(WithWizard(r.Context(), id, wz))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithWizard кладет сессию в контекст
func WithWizard(ctx context.Context, id string, wz *wizard.Service) context.Context {
	ctx = context.WithValue(ctx, sessionIDKey, id)
	return context.WithValue(ctx, wizardKey, wz)
}

// GetWizard извлекает визард сессии из контекста
func GetWizard(ctx context.Context) (*wizard.Service, bool) {
	wz, ok := ctx.Value(wizardKey).(*wizard.Service)
	return wz, ok && wz != nil
}

// GetSessionID извлекает id сессии из контекста
func GetSessionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey).(string)
	return id, ok
}
