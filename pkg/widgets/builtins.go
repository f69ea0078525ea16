package widgets

import (
	"context"
	"html"
	"sort"
	"strings"

	"github.com/goliatone/go-mform/pkg/model"
)

var widgetInputs = map[model.FieldType]string{
	model.FieldTypeLink:      "LINK",
	model.FieldTypeLinklist:  "LINKLIST",
	model.FieldTypeMedia:     "MEDIA",
	model.FieldTypeMedialist: "MEDIALIST",
	model.FieldTypeImglist:   "MEDIALIST",
}

// InputName returns the input name the host CMS expects for a picker slot,
// e.g. REX_INPUT_MEDIA[1]. Types without a dedicated slot namespace return "".
func InputName(typ model.FieldType, id string) string {
	kind, ok := widgetInputs[typ]
	if !ok || id == "" {
		return ""
	}
	return "REX_INPUT_" + kind + "[" + id + "]"
}

// ElementID returns the element id of the hidden picker input, e.g.
// REX_MEDIA_1. Types without a dedicated slot namespace return "".
func ElementID(typ model.FieldType, id string) string {
	kind, ok := widgetInputs[typ]
	if !ok || id == "" {
		return ""
	}
	if typ == model.FieldTypeImglist {
		kind = "IMGLIST"
	}
	return "REX_" + kind + "_" + id
}

func renderLink(_ context.Context, req Request) (string, error) {
	return single(req, "link"), nil
}

func renderMedia(_ context.Context, req Request) (string, error) {
	return single(req, "media"), nil
}

func renderCustomLink(_ context.Context, req Request) (string, error) {
	return single(req, "custom-link"), nil
}

func renderLinklist(_ context.Context, req Request) (string, error) {
	return list(req, "linklist", false), nil
}

func renderMedialist(_ context.Context, req Request) (string, error) {
	return list(req, "medialist", false), nil
}

func renderImglist(_ context.Context, req Request) (string, error) {
	return list(req, "imglist", true), nil
}

// single renders a readonly display input paired with the submitted hidden
// input.
func single(req Request, kind string) string {
	var b strings.Builder
	open(&b, req, kind)
	b.WriteString(`<input class="form-control" type="text" id="`)
	b.WriteString(esc(req.HTMLID))
	b.WriteString(`_NAME" value="`)
	b.WriteString(esc(req.Value))
	b.WriteString(`" readonly="readonly" />`)
	hidden(&b, req)
	buttons(&b, req)
	b.WriteString(`</div>`)
	return b.String()
}

// list renders one select entry per comma separated value.
func list(req Request, kind string, preview bool) string {
	entries := splitList(req.Value)

	var b strings.Builder
	open(&b, req, kind)
	b.WriteString(`<select class="form-control" id="`)
	b.WriteString(esc(req.HTMLID))
	b.WriteString(`_SELECT" size="`)
	b.WriteString(esc(listSize(req)))
	b.WriteString(`">`)
	for _, entry := range entries {
		b.WriteString(`<option value="`)
		b.WriteString(esc(entry))
		b.WriteString(`">`)
		b.WriteString(esc(entry))
		b.WriteString(`</option>`)
	}
	b.WriteString(`</select>`)
	hidden(&b, req)
	if preview {
		b.WriteString(`<ul class="mform-imglist-preview">`)
		for _, entry := range entries {
			b.WriteString(`<li data-value="`)
			b.WriteString(esc(entry))
			b.WriteString(`"></li>`)
		}
		b.WriteString(`</ul>`)
	}
	buttons(&b, req)
	b.WriteString(`</div>`)
	return b.String()
}

func open(b *strings.Builder, req Request, kind string) {
	b.WriteString(`<div class="input-group mform-widget mform-`)
	b.WriteString(kind)
	b.WriteString(`" data-widget="`)
	b.WriteString(kind)
	b.WriteString(`"`)
	writeData(b, req.Parameters)
	writeAttrs(b, req.Attributes)
	b.WriteString(`>`)
}

func hidden(b *strings.Builder, req Request) {
	b.WriteString(`<input type="hidden" name="`)
	b.WriteString(esc(req.InputName))
	b.WriteString(`" id="`)
	b.WriteString(esc(req.HTMLID))
	b.WriteString(`" value="`)
	b.WriteString(esc(req.Value))
	b.WriteString(`" />`)
}

func buttons(b *strings.Builder, req Request) {
	id := esc(req.HTMLID)
	b.WriteString(`<span class="input-group-btn"><a href="#" class="btn btn-popup" data-widget-open="`)
	b.WriteString(id)
	b.WriteString(`">+</a><a href="#" class="btn btn-popup" data-widget-delete="`)
	b.WriteString(id)
	b.WriteString(`">-</a></span>`)
}

func writeData(b *strings.Builder, params map[string]string) {
	for _, key := range sortedKeys(params) {
		b.WriteString(` data-`)
		b.WriteString(esc(key))
		b.WriteString(`="`)
		b.WriteString(esc(params[key]))
		b.WriteString(`"`)
	}
}

func writeAttrs(b *strings.Builder, attrs map[string]string) {
	for _, key := range sortedKeys(attrs) {
		if key == "class" || key == "id" || key == "name" {
			continue
		}
		b.WriteString(` `)
		b.WriteString(esc(key))
		b.WriteString(`="`)
		b.WriteString(esc(attrs[key]))
		b.WriteString(`"`)
	}
}

func listSize(req Request) string {
	if size := strings.TrimSpace(req.Parameters["size"]); size != "" {
		return size
	}
	return "8"
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		if strings.TrimSpace(key) != "" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

func esc(value string) string {
	return html.EscapeString(value)
}
