// Package testsupport holds helpers shared by the package tests.
package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-mform/pkg/model"
)

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any, opts ...cmp.Option) string {
	return cmp.Diff(want, got, opts...)
}

// MustLoadFormModel decodes a JSON form model fixture.
func MustLoadFormModel(t *testing.T, path string) model.FormModel {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	var form model.FormModel
	if err := json.Unmarshal(data, &form); err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return form
}

// FieldTypes lists the descriptor types in order.
func FieldTypes(fields []model.Field) []model.FieldType {
	out := make([]model.FieldType, len(fields))
	for i, f := range fields {
		out[i] = f.Type
	}
	return out
}

// AssertContains fails the test for the first fragment missing from markup.
func AssertContains(t *testing.T, markup string, fragments ...string) {
	t.Helper()

	for _, fragment := range fragments {
		if !strings.Contains(markup, fragment) {
			t.Fatalf("expected %q in:\n%s", fragment, markup)
		}
	}
}

// AssertBalanced fails the test when open and close tag counts differ.
func AssertBalanced(t *testing.T, markup, tag string) {
	t.Helper()

	open := strings.Count(markup, "<"+tag+" ") + strings.Count(markup, "<"+tag+">")
	if closed := strings.Count(markup, "</"+tag+">"); open != closed {
		t.Fatalf("unbalanced %s tags: %d open, %d closed in:\n%s", tag, open, closed, markup)
	}
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
