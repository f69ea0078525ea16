package themes

import (
	"embed"
	"io/fs"
)

//go:embed themes/*/*.tmpl themes/*/*.css
var embeddedThemes embed.FS

const (
	// DefaultThemeName is the theme bundled with the module and the fallback
	// for templates a custom theme does not provide.
	DefaultThemeName = "default"
	// DefaultStylesheet is the stylesheet file shipped with the default theme.
	DefaultStylesheet = "theme.css"
)

// TemplatesFS exposes the embedded theme bundle. Template paths have the form
// themes/<theme>/<name>.tmpl.
func TemplatesFS() fs.FS {
	return embeddedThemes
}

// AssetsFS exposes theme stylesheets rooted at the themes directory so hosts
// can serve them (for example under /assets/addons/mform/themes/).
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedThemes, "themes")
	if err != nil {
		return embeddedThemes
	}
	return sub
}
