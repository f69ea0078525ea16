// Package template defines the template rendering contract consumed by the
// form parser. The gotemplate sub-package provides the default pongo2-backed
// implementation loading theme templates from an fs.FS or a directory.
package template
