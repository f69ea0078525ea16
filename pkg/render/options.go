package render

import (
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-mform/pkg/render/template"
)

const (
	defaultInputName = "REX_INPUT_VALUE"
	defaultIDPrefix  = "rv"
)

// Option configures a Parser.
type Option func(*Parser)

// WithTemplateRenderer sets the engine that executes theme templates.
func WithTemplateRenderer(renderer template.TemplateRenderer) Option {
	return func(p *Parser) {
		if renderer != nil {
			p.templates = renderer
		}
	}
}

// WithResolver sets how logical template names map to template paths.
func WithResolver(resolver TemplateResolver) Option {
	return func(p *Parser) {
		if resolver != nil {
			p.resolver = resolver
		}
	}
}

// WithThemeAssets sets the theme boot and stylesheet provider.
func WithThemeAssets(assets ThemeAssets) Option {
	return func(p *Parser) {
		if assets != nil {
			p.assets = assets
		}
	}
}

// WithWidgets sets the link and media widget renderer.
func WithWidgets(renderer WidgetRenderer) Option {
	return func(p *Parser) {
		if renderer != nil {
			p.widgets = renderer
		}
	}
}

// WithDefaultTheme sets the configured theme. Renders that request another
// theme boot it and report its stylesheets.
func WithDefaultTheme(name string) Option {
	return func(p *Parser) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			p.theme = trimmed
		}
	}
}

// WithInputName sets the input name prefix, REX_INPUT_VALUE by default.
func WithInputName(prefix string) Option {
	return func(p *Parser) {
		if trimmed := strings.TrimSpace(prefix); trimmed != "" {
			p.inputName = trimmed
		}
	}
}

// WithIDPrefix sets the html id prefix, "rv" by default.
func WithIDPrefix(prefix string) Option {
	return func(p *Parser) {
		p.idPrefix = strings.TrimSpace(prefix)
	}
}

// WithGroupIDs sets the generator used for tab and collapse ids.
func WithGroupIDs(next func() string) Option {
	return func(p *Parser) {
		if next != nil {
			p.groupID = next
		}
	}
}

// WithLogger sets the logger used for skipped fields and theme boots.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// RenderOptions tune a single Render call.
type RenderOptions struct {
	// Theme selects the theme for this render. Empty means the configured
	// theme.
	Theme string
	// Debug receives a dump of the descriptor sequence when non-nil.
	Debug io.Writer
}
