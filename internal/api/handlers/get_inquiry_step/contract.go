package get_inquiry_step

import (
	"github.com/m04kA/RhuMuda-BookingService/internal/service/wizard"
)

// WizardFactory пустой визард для запросов без сессии
type WizardFactory func() *wizard.Service

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
