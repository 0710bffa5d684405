package start_inquiry

import (
	"github.com/m04kA/RhuMuda-BookingService/internal/service/wizard"
)

type SessionStore interface {
	Create(w *wizard.Service) (string, error)
}

// WizardFactory создает визард для новой сессии
type WizardFactory func() *wizard.Service

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
