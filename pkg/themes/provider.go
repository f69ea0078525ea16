package themes

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
)

// templatePartialPrefix namespaces manifest template overrides, e.g.
// Templates["mform.text"] = "themes/acme/input.tmpl".
const templatePartialPrefix = "mform."

// Provider serves theme templates and CSS assets backed by a go-theme
// selector. A Provider is safe for concurrent use; the set of booted themes
// is shared by every render that uses it.
type Provider struct {
	selector  theme.ThemeSelector
	templates fs.FS

	mu     sync.Mutex
	booted map[string]struct{}
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithSelector swaps the theme selector. Defaults to NewSelector().
func WithSelector(selector theme.ThemeSelector) ProviderOption {
	return func(p *Provider) {
		if selector != nil {
			p.selector = selector
		}
	}
}

// WithTemplatesFS swaps the template bundle used for existence checks during
// resolution. It must expose the same paths the template renderer loads.
func WithTemplatesFS(files fs.FS) ProviderOption {
	return func(p *Provider) {
		if files != nil {
			p.templates = files
		}
	}
}

// NewProvider constructs a Provider over the embedded bundle.
func NewProvider(options ...ProviderOption) *Provider {
	p := &Provider{
		selector:  NewSelector(),
		templates: TemplatesFS(),
		booted:    make(map[string]struct{}),
	}
	for _, opt := range options {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// EnsureBooted verifies the theme is known and records it as booted.
func (p *Provider) EnsureBooted(name string) error {
	key := normalizeName(name)

	p.mu.Lock()
	_, ok := p.booted[key]
	p.mu.Unlock()
	if ok {
		return nil
	}

	if _, err := p.selector.Select(name, ""); err != nil {
		return fmt.Errorf("themes: boot %q: %w", name, err)
	}

	p.mu.Lock()
	p.booted[key] = struct{}{}
	p.mu.Unlock()
	return nil
}

// Booted reports whether EnsureBooted succeeded for name.
func (p *Provider) Booted(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.booted[normalizeName(name)]
	return ok
}

// CSSAssets lists the stylesheet URLs declared by the theme manifest,
// ordered by asset key.
func (p *Provider) CSSAssets(name string) ([]string, error) {
	selection, err := p.selector.Select(name, "")
	if err != nil {
		return nil, fmt.Errorf("themes: css assets %q: %w", name, err)
	}
	if selection == nil || selection.Manifest == nil {
		return nil, nil
	}

	assets := selection.Manifest.Assets
	keys := make([]string, 0, len(assets.Files))
	for key, file := range assets.Files {
		if strings.EqualFold(path.Ext(file), ".css") {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, key := range keys {
		out = append(out, assetURL(assets.Prefix, assets.Files[key]))
	}
	return out, nil
}

// Resolve maps a logical template name to a template path for the theme.
// Manifest overrides win, then the theme's own file, then the default theme.
func (p *Provider) Resolve(themeName, name string) string {
	key := normalizeName(themeName)
	if key == "" {
		key = DefaultThemeName
	}

	if selection, err := p.selector.Select(key, ""); err == nil && selection != nil && selection.Manifest != nil {
		if override := strings.TrimSpace(selection.Manifest.Templates[templatePartialPrefix+name]); override != "" {
			return override
		}
	}

	candidate := templatePath(key, name)
	if key != DefaultThemeName && p.exists(candidate) {
		return candidate
	}
	return templatePath(DefaultThemeName, name)
}

func (p *Provider) exists(name string) bool {
	if p.templates == nil {
		return false
	}
	_, err := fs.Stat(p.templates, name)
	return err == nil
}

func templatePath(themeName, name string) string {
	return "themes/" + themeName + "/" + name + ".tmpl"
}

func assetURL(prefix, file string) string {
	file = strings.TrimSpace(file)
	if strings.HasPrefix(file, "/") || strings.Contains(file, "://") {
		return file
	}
	prefix = strings.TrimRight(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return file
	}
	return prefix + "/" + file
}
