package wizard

import "github.com/m04kA/RhuMuda-BookingService/internal/domain"

// ValidationResult outcome of validating one step.
type ValidationResult struct {
	Step    domain.Step
	Valid   bool
	Missing []domain.Field
}

// Err returns a *ValidationError for an invalid result and nil otherwise.
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return &ValidationError{Step: r.Step, Fields: r.Missing}
}

// Validate checks the required fields of step. Every required field of the
// step is marked touched, so field errors become visible after the first attempt.
func (s *Store) Validate(step domain.Step) ValidationResult {
	for _, f := range domain.RequiredFields(step) {
		s.Touch(f)
	}

	missing := s.missingFields(step)
	return ValidationResult{
		Step:    step,
		Valid:   len(missing) == 0,
		Missing: missing,
	}
}

// FieldErrors fields of step to render as invalid: touched and still empty.
func (s *Store) FieldErrors(step domain.Step) []domain.Field {
	var out []domain.Field
	for _, f := range s.missingFields(step) {
		if s.IsTouched(f) {
			out = append(out, f)
		}
	}
	return out
}

func (s *Store) missingFields(step domain.Step) []domain.Field {
	switch step {
	case domain.StepCustomerInfo:
		return s.customer.MissingFields()
	case domain.StepReservationDetails:
		return s.reservation.MissingFields()
	default:
		return nil
	}
}
