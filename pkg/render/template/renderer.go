package template

import (
	"io"
)

// TemplateRenderer is the seam between the form parser and a concrete
// template engine: render a named template (or a raw template string) with a
// set of named values and return the resulting markup. When writers are
// supplied the output is copied to each of them as well.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
}
