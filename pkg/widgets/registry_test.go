package widgets

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-mform/pkg/model"
)

func TestNewRegistry_Builtins(t *testing.T) {
	reg := NewRegistry()

	want := []model.FieldType{
		model.FieldTypeCustomLink,
		model.FieldTypeImglist,
		model.FieldTypeLink,
		model.FieldTypeLinklist,
		model.FieldTypeMedia,
		model.FieldTypeMedialist,
	}
	if diff := cmp.Diff(want, reg.Types()); diff != "" {
		t.Fatalf("builtin types mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderWidget_Media(t *testing.T) {
	reg := NewRegistry()

	out, err := reg.RenderWidget(context.Background(), Request{
		Type:       model.FieldTypeMedia,
		ID:         "1",
		InputName:  InputName(model.FieldTypeMedia, "1"),
		HTMLID:     ElementID(model.FieldTypeMedia, "1"),
		Value:      "logo.png",
		Parameters: map[string]string{"types": "png,jpg"},
	})
	if err != nil {
		t.Fatalf("render widget: %v", err)
	}

	for _, fragment := range []string{
		`data-widget="media"`,
		`data-types="png,jpg"`,
		`name="REX_INPUT_MEDIA[1]"`,
		`id="REX_MEDIA_1"`,
		`id="REX_MEDIA_1_NAME" value="logo.png" readonly="readonly"`,
	} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected %q in %s", fragment, out)
		}
	}
}

func TestRenderWidget_ListEntries(t *testing.T) {
	reg := NewRegistry()

	out, err := reg.RenderWidget(context.Background(), Request{
		Type:      model.FieldTypeImglist,
		ID:        "2",
		InputName: InputName(model.FieldTypeImglist, "2"),
		HTMLID:    ElementID(model.FieldTypeImglist, "2"),
		Value:     "a.jpg, b.jpg",
	})
	if err != nil {
		t.Fatalf("render widget: %v", err)
	}
	if got := strings.Count(out, "<option "); got != 2 {
		t.Fatalf("expected 2 list entries, got %d in %s", got, out)
	}
	if !strings.Contains(out, `name="REX_INPUT_MEDIALIST[2]"`) {
		t.Fatalf("expected medialist input name, got %s", out)
	}
	if !strings.Contains(out, `mform-imglist-preview`) {
		t.Fatalf("expected preview list, got %s", out)
	}
}

func TestRenderWidget_EscapesValues(t *testing.T) {
	reg := NewRegistry()

	out, err := reg.RenderWidget(context.Background(), Request{
		Type:   model.FieldTypeCustomLink,
		HTMLID: "rv3",
		Value:  `"><script>`,
	})
	if err != nil {
		t.Fatalf("render widget: %v", err)
	}
	if strings.Contains(out, "<script>") {
		t.Fatalf("expected value to be escaped, got %s", out)
	}
}

func TestRenderWidget_Override(t *testing.T) {
	reg := NewRegistry()
	reg.Register(model.FieldTypeLink, func(_ context.Context, req Request) (string, error) {
		req.Parameters["seen"] = "yes"
		return "custom:" + req.ID, nil
	})

	params := map[string]string{"category": "4"}
	out, err := reg.RenderWidget(context.Background(), Request{Type: model.FieldTypeLink, ID: "7", Parameters: params})
	if err != nil {
		t.Fatalf("render widget: %v", err)
	}
	if out != "custom:7" {
		t.Fatalf("expected override output, got %q", out)
	}
	if _, mutated := params["seen"]; mutated {
		t.Fatalf("expected caller parameters to stay untouched")
	}
}

func TestRenderWidget_NotRegistered(t *testing.T) {
	var reg Registry

	_, err := reg.RenderWidget(context.Background(), Request{Type: model.FieldTypeLink})
	if !errors.Is(err, ErrWidgetNotRegistered) {
		t.Fatalf("expected ErrWidgetNotRegistered, got %v", err)
	}
}

func TestInputNameAndElementID(t *testing.T) {
	cases := []struct {
		typ        model.FieldType
		wantName   string
		wantElemID string
	}{
		{model.FieldTypeLink, "REX_INPUT_LINK[1]", "REX_LINK_1"},
		{model.FieldTypeLinklist, "REX_INPUT_LINKLIST[1]", "REX_LINKLIST_1"},
		{model.FieldTypeMedialist, "REX_INPUT_MEDIALIST[1]", "REX_MEDIALIST_1"},
		{model.FieldTypeImglist, "REX_INPUT_MEDIALIST[1]", "REX_IMGLIST_1"},
		{model.FieldTypeCustomLink, "", ""},
	}
	for _, tc := range cases {
		if got := InputName(tc.typ, "1"); got != tc.wantName {
			t.Fatalf("%s: input name %q, want %q", tc.typ, got, tc.wantName)
		}
		if got := ElementID(tc.typ, "1"); got != tc.wantElemID {
			t.Fatalf("%s: element id %q, want %q", tc.typ, got, tc.wantElemID)
		}
	}
}
