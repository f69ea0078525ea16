package mform

import (
	"io/fs"

	"github.com/goliatone/go-mform/pkg/themes"
)

// EmbeddedTemplates exposes the bundled theme templates so callers can reuse
// or extend them without importing the themes package directly. Paths have
// the form themes/<theme>/<name>.tmpl.
func EmbeddedTemplates() fs.FS {
	return themes.TemplatesFS()
}
