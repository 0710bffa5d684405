package update_inquiry_step

import (
	"github.com/m04kA/RhuMuda-BookingService/internal/service/wizard"
)

// WizardEditor изменение полей шага
type WizardEditor interface {
	UpdateCustomerInfo(patch wizard.CustomerInfoPatch) error
	UpdateReservation(patch wizard.ReservationPatch) error
	UpdateOptions(patch wizard.OptionsPatch) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
