package render

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-mform/pkg/model"
)

// ErrNoWidgetRenderer is returned when a widget field is rendered by a parser
// without a widget renderer.
var ErrNoWidgetRenderer = errors.New("render: widget renderer not configured")

// FieldError reports a collaborator failure while rendering one descriptor.
type FieldError struct {
	Position int
	Type     model.FieldType
	Err      error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("render: field %d (%s): %v", e.Position, e.Type, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
