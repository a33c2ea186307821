package form

import "errors"

var (
	// ErrUnknownField is returned when an operation names a field the spec
	// does not declare.
	ErrUnknownField = errors.New("form: unknown field")
	// ErrInvalidSpec is returned when a Spec fails validation.
	ErrInvalidSpec = errors.New("form: invalid spec")
)
