package render

import (
	"context"

	"github.com/goliatone/go-mform/pkg/widgets"
)

// TemplateResolver maps a logical template name ("text", "fieldset-open") to
// the template path used for a theme.
type TemplateResolver interface {
	Resolve(theme, name string) string
}

// ThemeAssets exposes the boot and stylesheet capabilities of a theme store.
type ThemeAssets interface {
	EnsureBooted(theme string) error
	CSSAssets(theme string) ([]string, error)
}

// WidgetRenderer renders link and media picker widgets.
type WidgetRenderer interface {
	RenderWidget(ctx context.Context, req widgets.Request) (string, error)
}
