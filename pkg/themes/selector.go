package themes

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
)

// ErrThemeNotFound is returned when a selector has no manifest for a name.
var ErrThemeNotFound = errors.New("themes: theme not found")

// DefaultAssetPrefix is the public URL prefix for bundled theme assets.
const DefaultAssetPrefix = "/assets/addons/mform/themes"

// DefaultManifest describes the bundled default theme.
func DefaultManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    DefaultThemeName,
		Version: "1.0.0",
		Assets: theme.Assets{
			Prefix: DefaultAssetPrefix + "/" + DefaultThemeName,
			Files: map[string]string{
				"mform.stylesheet": DefaultStylesheet,
			},
		},
	}
}

// ManifestSelector resolves themes from an in-memory set of go-theme
// manifests. It satisfies theme.ThemeSelector.
type ManifestSelector struct {
	mu        sync.RWMutex
	manifests map[string]*theme.Manifest
}

var _ theme.ThemeSelector = (*ManifestSelector)(nil)

// NewSelector returns a selector seeded with the default manifest plus any
// extra manifests supplied. Nil and nameless manifests are skipped; use
// Register directly to get the error.
func NewSelector(manifests ...*theme.Manifest) *ManifestSelector {
	s := &ManifestSelector{manifests: make(map[string]*theme.Manifest)}
	_ = s.Register(DefaultManifest())
	for _, manifest := range manifests {
		_ = s.Register(manifest)
	}
	return s
}

// Register adds or replaces a manifest keyed by its name.
func (s *ManifestSelector) Register(manifest *theme.Manifest) error {
	if manifest == nil {
		return errors.New("themes: manifest is required")
	}
	name := normalizeName(manifest.Name)
	if name == "" {
		return errors.New("themes: manifest name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.manifests[name] = manifest
	return nil
}

// Load reads a go-theme manifest file (JSON or YAML) from fsys, validates it
// and registers it.
func (s *ManifestSelector) Load(fsys fs.FS, name string) error {
	manifest, err := theme.LoadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("themes: load %s: %w", name, err)
	}
	return s.Register(manifest)
}

// Select returns the manifest registered under name. Variants are carried
// through untouched; mform themes do not define variant-specific templates.
func (s *ManifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	key := normalizeName(name)
	if key == "" {
		key = DefaultThemeName
	}

	s.mu.RLock()
	manifest, ok := s.manifests[key]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}

	return &theme.Selection{
		Theme:    key,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
