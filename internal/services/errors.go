package services

import "strings"

// ValidationError carries every problem found in a request body so the
// client can fix them in one round trip.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

// validationError wraps a non-empty problem list, nil otherwise.
func validationError(problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: problems}
}
