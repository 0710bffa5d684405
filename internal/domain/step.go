package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownStep возвращается при разборе неизвестного идентификатора шага
var ErrUnknownStep = errors.New("domain: unknown wizard step")

// Step is a position of the inquiry wizard cursor.
type Step int

const (
	StepCustomerInfo Step = iota
	StepReservationDetails
	StepOtherOptions
	StepConfirmation // terminal
)

// StepsCount is the number of wizard states, the confirmation included.
const StepsCount = 4

var stepNames = [...]string{
	StepCustomerInfo:       "customer-info",
	StepReservationDetails: "reservation-details",
	StepOtherOptions:       "other-options",
	StepConfirmation:       "confirmation",
}

// String returns the step identifier used in URLs, logs and metrics.
func (s Step) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("step(%d)", int(s))
	}
	return stepNames[s]
}

// IsValid reports whether the step lies in [StepCustomerInfo, StepConfirmation].
func (s Step) IsValid() bool {
	return s >= StepCustomerInfo && s <= StepConfirmation
}

// IsTerminal returns true for the confirmation state.
func (s Step) IsTerminal() bool {
	return s == StepConfirmation
}

// ParseStep converts a step identifier back to a Step.
func ParseStep(id string) (Step, error) {
	for i, name := range stepNames {
		if name == id {
			return Step(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStep, id)
}

// MarshalText encodes the step as its identifier.
func (s Step) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
