package model

import (
	"errors"
	"fmt"
)

// ErrUnknownFieldType marks a tag outside the FieldType vocabulary. Callers
// treat it as "nothing to render" rather than a fatal condition.
var ErrUnknownFieldType = errors.New("model: unknown field type")

// UnknownFieldTypeError carries the offending tag and, when known, the
// descriptor position.
type UnknownFieldTypeError struct {
	Type     string
	Position int
}

func (e *UnknownFieldTypeError) Error() string {
	if e.Position > 0 {
		return fmt.Sprintf("model: unknown field type %q at position %d", e.Type, e.Position)
	}
	return fmt.Sprintf("model: unknown field type %q", e.Type)
}

func (e *UnknownFieldTypeError) Unwrap() error {
	return ErrUnknownFieldType
}
