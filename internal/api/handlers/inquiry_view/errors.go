package inquiry_view

import (
	"errors"
	"net/http"

	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers"
	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
	"github.com/m04kA/RhuMuda-BookingService/internal/service/wizard"
)

const (
	msgStepInvalid         = "please fill in all required fields"
	msgSubmissionFailed    = "failed to submit the booking, please try again"
	msgPackageNotFound     = "selected package not found"
	msgCatalogNotLoaded    = "packages are not loaded yet"
	msgNoPackagesAvailable = "no packages available"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RespondWizardError переводит ошибку визарда в HTTP ответ
func RespondWizardError(w http.ResponseWriter, logger Logger, route string, err error) {
	var verr *wizard.ValidationError
	switch {
	case errors.As(err, &verr):
		logger.Warn("%s - Step invalid: %v", route, err)
		fields := make([]string, 0, len(verr.Fields))
		for _, f := range verr.Fields {
			fields = append(fields, string(f))
		}
		handlers.RespondValidationError(w, msgStepInvalid, verr.Step.String(), fields)

	case errors.Is(err, wizard.ErrUnknownAddOn),
		errors.Is(err, wizard.ErrUnknownJetty),
		errors.Is(err, wizard.ErrDateOutOfRange),
		errors.Is(err, wizard.ErrPassengersOutOfRange),
		errors.Is(err, wizard.ErrRemarksTooLong),
		errors.Is(err, wizard.ErrInvalidFieldValue),
		errors.Is(err, domain.ErrUnknownField):
		logger.Warn("%s - Invalid field value: %v", route, err)
		handlers.RespondBadRequest(w, err.Error())

	case errors.Is(err, wizard.ErrPackageNotFound):
		logger.Warn("%s - Package not found: %v", route, err)
		handlers.RespondNotFound(w, msgPackageNotFound)

	case errors.Is(err, wizard.ErrCatalogNotLoaded):
		logger.Warn("%s - Catalog not loaded", route)
		handlers.RespondServiceUnavailable(w, msgCatalogNotLoaded)

	case errors.Is(err, wizard.ErrNoPackagesAvailable):
		logger.Warn("%s - No packages available", route)
		handlers.RespondServiceUnavailable(w, msgNoPackagesAvailable)

	case errors.Is(err, wizard.ErrAtFirstStep),
		errors.Is(err, wizard.ErrWizardCompleted),
		errors.Is(err, wizard.ErrSubmissionInProgress),
		errors.Is(err, wizard.ErrSubmissionDiscarded),
		errors.Is(err, wizard.ErrNotConfirmed):
		logger.Warn("%s - Conflict: %v", route, err)
		handlers.RespondConflict(w, err.Error())

	case errors.Is(err, wizard.ErrSubmissionFailed):
		logger.Error("%s - Submission failed: %v", route, err)
		handlers.RespondBadGateway(w, msgSubmissionFailed)

	default:
		logger.Error("%s - Unexpected error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
