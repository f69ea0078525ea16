package mform

import (
	"io/fs"
	"strings"
	"testing"
)

func TestThemeAssetsFSContainsDefaultStylesheet(t *testing.T) {
	data, err := fs.ReadFile(ThemeAssetsFS(), "default/theme.css")
	if err != nil {
		t.Fatalf("expected default stylesheet to be readable: %v", err)
	}
	if !strings.Contains(string(data), ".mform-item") {
		t.Fatalf("expected stylesheet to style form items")
	}
}

func TestEmbeddedTemplatesContainsWrappers(t *testing.T) {
	for _, name := range []string{"default", "default_full", "hidden"} {
		if _, err := fs.Stat(EmbeddedTemplates(), "themes/default/"+name+".tmpl"); err != nil {
			t.Fatalf("expected wrapper template %s: %v", name, err)
		}
	}
}
