package model

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseFieldType(t *testing.T) {
	for _, typ := range FieldTypes() {
		got, err := ParseFieldType(" " + string(typ) + " ")
		if err != nil {
			t.Fatalf("parse %q: %v", typ, err)
		}
		if got != typ {
			t.Fatalf("parse %q: got %q", typ, got)
		}
	}

	_, err := ParseFieldType("password")
	if !errors.Is(err, ErrUnknownFieldType) {
		t.Fatalf("expected ErrUnknownFieldType, got %v", err)
	}
	var typed *UnknownFieldTypeError
	if !errors.As(err, &typed) || typed.Type != "password" {
		t.Fatalf("expected typed error carrying the tag, got %#v", err)
	}
}

func TestFieldSelectsOption(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  map[string]bool
	}{
		{
			name:  "current value",
			field: Field{Mode: ModeEdit, Value: "b"},
			want:  map[string]bool{"a": false, "b": true},
		},
		{
			name:  "default in add mode",
			field: Field{Mode: ModeAdd, DefaultValue: "a"},
			want:  map[string]bool{"a": true, "b": false},
		},
		{
			name:  "default ignored in edit mode",
			field: Field{Mode: ModeEdit, DefaultValue: "a"},
			want:  map[string]bool{"a": false, "b": false},
		},
		{
			name:  "multiple in edit mode",
			field: Field{Mode: ModeEdit, Multiple: true, Value: "x,y"},
			want:  map[string]bool{"x": true, "y": true, "z": false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, want := range tt.want {
				if got := tt.field.SelectsOption(key); got != want {
					t.Fatalf("SelectsOption(%q) = %v, want %v", key, got, want)
				}
			}
		})
	}
}

func TestFieldDisplayValue(t *testing.T) {
	add := Field{Mode: ModeAdd, DefaultValue: "fallback"}
	if got := add.DisplayValue(); got != "fallback" {
		t.Fatalf("expected default value in add mode, got %q", got)
	}
	edit := Field{Mode: ModeEdit, DefaultValue: "fallback"}
	if got := edit.DisplayValue(); got != "" {
		t.Fatalf("expected empty value in edit mode, got %q", got)
	}
}

func TestFieldVarID(t *testing.T) {
	if diff := cmp.Diff([]string{"1", "2"}, Field{ID: "1.2"}.VarID()); diff != "" {
		t.Fatalf("var id mismatch (-want +got):\n%s", diff)
	}
	if got := (Field{}).VarID(); got != nil {
		t.Fatalf("expected nil var id, got %v", got)
	}
}

func TestCountOptions(t *testing.T) {
	options := []Option{
		Opt("a", "A"),
		Group("Group", Opt("b", "B"), Opt("c", "C")),
	}
	if got := CountOptions(options); got != 4 {
		t.Fatalf("expected 4 rendered entries, got %d", got)
	}
}

func TestFieldCloneIsDeep(t *testing.T) {
	original := Field{
		Attributes: map[string]string{"a": "1"},
		Options:    []Option{Group("g", Opt("x", "X"))},
	}
	clone := original.Clone()
	clone.Attributes["a"] = "2"
	clone.Options[0].Options[0].Label = "changed"

	if original.Attributes["a"] != "1" {
		t.Fatalf("attribute map shared with clone")
	}
	if original.Options[0].Options[0].Label != "X" {
		t.Fatalf("options shared with clone")
	}
}
