package themes_test

import (
	"errors"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-mform/pkg/themes"
)

func acmeManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    "Acme",
		Version: "0.1.0",
		Templates: map[string]string{
			"mform.select": "themes/acme/dropdown.tmpl",
		},
		Assets: theme.Assets{
			Prefix: "/static/acme/",
			Files: map[string]string{
				"b.print":  "print.css",
				"a.screen": "screen.css",
				"logo":     "logo.svg",
				"cdn":      "https://cdn.example.com/base.css",
			},
		},
	}
}

func TestProvider_CSSAssetsOrderedByKey(t *testing.T) {
	provider := themes.NewProvider(themes.WithSelector(themes.NewSelector(acmeManifest())))

	got, err := provider.CSSAssets("acme")
	if err != nil {
		t.Fatalf("css assets: %v", err)
	}
	want := []string{
		"/static/acme/screen.css",
		"/static/acme/print.css",
		"https://cdn.example.com/base.css",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("stylesheets mismatch (-want +got):\n%s", diff)
	}
}

func TestProvider_DefaultStylesheet(t *testing.T) {
	provider := themes.NewProvider()

	got, err := provider.CSSAssets("")
	if err != nil {
		t.Fatalf("css assets: %v", err)
	}
	want := []string{themes.DefaultAssetPrefix + "/default/" + themes.DefaultStylesheet}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("stylesheets mismatch (-want +got):\n%s", diff)
	}
}

func TestProvider_EnsureBooted(t *testing.T) {
	provider := themes.NewProvider(themes.WithSelector(themes.NewSelector(acmeManifest())))

	if provider.Booted("acme") {
		t.Fatalf("theme should not be booted yet")
	}
	if err := provider.EnsureBooted(" ACME "); err != nil {
		t.Fatalf("ensure booted: %v", err)
	}
	if !provider.Booted("acme") {
		t.Fatalf("expected acme to be recorded as booted")
	}

	err := provider.EnsureBooted("missing")
	if !errors.Is(err, themes.ErrThemeNotFound) {
		t.Fatalf("expected ErrThemeNotFound, got %v", err)
	}
	if provider.Booted("missing") {
		t.Fatalf("failed boot must not be recorded")
	}
}

func TestProvider_Resolve(t *testing.T) {
	files := fstest.MapFS{
		"themes/acme/text.tmpl":        {Data: []byte("acme text")},
		"themes/default/text.tmpl":     {Data: []byte("text")},
		"themes/default/textarea.tmpl": {Data: []byte("area")},
	}
	provider := themes.NewProvider(
		themes.WithSelector(themes.NewSelector(acmeManifest())),
		themes.WithTemplatesFS(files),
	)

	cases := []struct {
		theme string
		name  string
		want  string
	}{
		{theme: "acme", name: "select", want: "themes/acme/dropdown.tmpl"},
		{theme: "acme", name: "text", want: "themes/acme/text.tmpl"},
		{theme: "acme", name: "textarea", want: "themes/default/textarea.tmpl"},
		{theme: "unknown", name: "text", want: "themes/default/text.tmpl"},
		{theme: "", name: "text", want: "themes/default/text.tmpl"},
	}
	for _, tc := range cases {
		if got := provider.Resolve(tc.theme, tc.name); got != tc.want {
			t.Fatalf("Resolve(%q, %q) = %q, want %q", tc.theme, tc.name, got, tc.want)
		}
	}
}

func TestSelector_Select(t *testing.T) {
	selector := themes.NewSelector()

	selection, err := selector.Select("", "dark")
	if err != nil {
		t.Fatalf("select default: %v", err)
	}
	if selection.Theme != themes.DefaultThemeName || selection.Variant != "dark" {
		t.Fatalf("unexpected selection %+v", selection)
	}
	if err := selector.Register(&theme.Manifest{}); err == nil {
		t.Fatalf("expected nameless manifest to be rejected")
	}
}

func TestNewSelector_SkipsInvalidManifests(t *testing.T) {
	selector := themes.NewSelector(nil, &theme.Manifest{Version: "1.0.0"}, acmeManifest())

	if _, err := selector.Select("acme", ""); err != nil {
		t.Fatalf("expected valid manifest to register: %v", err)
	}
	if _, err := selector.Select("", ""); err != nil {
		t.Fatalf("expected default manifest to survive: %v", err)
	}
}

func TestSelector_Load(t *testing.T) {
	files := fstest.MapFS{
		"dark/theme.yaml": {Data: []byte(`
name: dark
version: 1.0.0
assets:
  prefix: /static/dark
  files:
    main: dark.css
`)},
		"broken.yaml": {Data: []byte("name: broken\n")},
	}
	selector := themes.NewSelector()

	if err := selector.Load(files, "dark/theme.yaml"); err != nil {
		t.Fatalf("load: %v", err)
	}
	css, err := themes.NewProvider(themes.WithSelector(selector)).CSSAssets("dark")
	if err != nil {
		t.Fatalf("css assets: %v", err)
	}
	if diff := cmp.Diff([]string{"/static/dark/dark.css"}, css); diff != "" {
		t.Fatalf("assets mismatch (-want +got):\n%s", diff)
	}

	if err := selector.Load(files, "broken.yaml"); err == nil {
		t.Fatalf("expected a manifest without version to fail validation")
	}
	if err := selector.Load(files, "missing.yaml"); err == nil {
		t.Fatalf("expected a missing manifest to fail")
	}
}

func TestTemplatesFS_ContainsDefaultTheme(t *testing.T) {
	for _, name := range []string{"default", "text", "select", "fieldset-open", "collapse-open"} {
		path := themes.NewProvider().Resolve("", name)
		if _, err := themes.TemplatesFS().Open(path); err != nil {
			t.Fatalf("expected embedded template %s: %v", path, err)
		}
	}
}
