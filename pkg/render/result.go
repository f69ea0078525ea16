package render

import (
	"html"
	"strings"
)

// Result is the output of a Render call.
type Result struct {
	// HTML is the concatenated form markup.
	HTML string
	// Stylesheets lists the CSS assets of a non-default theme selected for
	// the render, in asset order.
	Stylesheets []string
	// Skipped holds one *model.UnknownFieldTypeError per descriptor that had
	// no rendering routine.
	Skipped []error
}

// HeadLinks returns a stylesheet link tag per entry in Stylesheets.
func (r Result) HeadLinks() string {
	var b strings.Builder
	for _, href := range r.Stylesheets {
		b.WriteString(`<link rel="stylesheet" type="text/css" media="all" href="`)
		b.WriteString(html.EscapeString(href))
		b.WriteString("\" />\n")
	}
	return b.String()
}

// WithAssets returns the head links followed by the form markup.
func (r Result) WithAssets() string {
	return r.HeadLinks() + r.HTML
}

func (r Result) String() string {
	return r.HTML
}
