package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrMissingFields is matched by every [MissingFieldsError].
	ErrMissingFields = errors.New("missing required fields")
)

// MissingFieldsError lists the request fields that were absent, using
// their JSON names, in a stable order.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return ErrMissingFields.Error() + ": " + strings.Join(e.Fields, ", ")
}

// Is makes errors.Is(err, ErrMissingFields) hold.
func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingFields
}
