package caltime

import (
	"errors"
	"fmt"
)

// ErrInvalidField reports a present field holding a value outside its domain
var ErrInvalidField = errors.New("invalid calendar field value")

// FieldError represents invalid field value
type FieldError struct {
	Field  Field
	Value  int
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %v value %d: %s", e.Field, e.Value, e.Reason)
}

// Unwrap returns ErrInvalidField
func (e *FieldError) Unwrap() error {
	return ErrInvalidField
}
