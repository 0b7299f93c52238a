package vitals

import (
	"errors"
	"fmt"
)

var ErrReadingNotFound = errors.New("reading not found")

// ValidationError rejects malformed or out-of-physiological-bounds input
// before anything is persisted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
