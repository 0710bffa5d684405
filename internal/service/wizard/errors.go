package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
)

var (
	// ErrStepInvalid возвращается, когда на текущем шаге не заполнены обязательные поля
	ErrStepInvalid = errors.New("wizard: step has missing required fields")

	// ErrAtFirstStep возвращается при попытке вернуться с первого шага
	ErrAtFirstStep = errors.New("wizard: already at the first step")

	// ErrWizardCompleted возвращается при навигации после подтверждения бронирования
	ErrWizardCompleted = errors.New("wizard: booking already confirmed, restart to begin a new inquiry")

	// ErrNotConfirmed возвращается при запросе подтверждения до успешной отправки
	ErrNotConfirmed = errors.New("wizard: booking is not confirmed yet")

	// ErrSubmissionInProgress возвращается при повторной отправке, пока первая не завершилась
	ErrSubmissionInProgress = errors.New("wizard: submission already in progress")

	// ErrSubmissionFailed возвращается, когда booking API не принял заявку
	ErrSubmissionFailed = errors.New("wizard: failed to submit booking")

	// ErrSubmissionDiscarded возвращается, если сессию перезапустили во время отправки
	ErrSubmissionDiscarded = errors.New("wizard: session restarted while the booking was being submitted")

	// ErrUnknownAddOn возвращается для add-on, которого нет в каталоге
	ErrUnknownAddOn = errors.New("wizard: unknown add-on")

	// ErrUnknownJetty возвращается для неизвестного причала
	ErrUnknownJetty = errors.New("wizard: unknown jetty location")

	// ErrDateOutOfRange возвращается, когда дата вне окна бронирования (завтра .. +3 месяца)
	// или альтернативная дата не позже сегодняшнего дня
	ErrDateOutOfRange = errors.New("wizard: date is outside the booking window")

	// ErrPassengersOutOfRange возвращается при количестве пассажиров вне 0..20
	ErrPassengersOutOfRange = errors.New("wizard: number of passengers is out of range")

	// ErrRemarksTooLong возвращается при слишком длинном комментарии
	ErrRemarksTooLong = errors.New("wizard: remarks are too long")

	// ErrInvalidFieldValue возвращается, когда значение поля не удалось разобрать
	ErrInvalidFieldValue = errors.New("wizard: invalid field value")

	// ErrCatalogNotLoaded возвращается при выборе пакета до загрузки каталога
	ErrCatalogNotLoaded = errors.New("wizard: package catalog is not loaded yet")

	// ErrNoPackagesAvailable возвращается, когда каталог пуст или не загрузился
	ErrNoPackagesAvailable = errors.New("wizard: no packages available")

	// ErrPackageNotFound возвращается, когда выбранного пакета нет в каталоге
	ErrPackageNotFound = errors.New("wizard: package not found")
)

// ValidationError lists the required fields that block leaving Step.
type ValidationError struct {
	Step   domain.Step
	Fields []domain.Field
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, string(f))
	}
	return fmt.Sprintf("%v: %s: %s", ErrStepInvalid, e.Step, strings.Join(names, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrStepInvalid
}
