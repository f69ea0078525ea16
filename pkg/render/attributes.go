package render

import (
	"html"
	"slices"
	"sort"
	"strings"

	"github.com/goliatone/go-mform/pkg/model"
)

// sizeFullPlaceholder is substituted with the rendered option count when a
// select asks for size "full".
const sizeFullPlaceholder = "#sizefull#"

// attrs is an html attribute set rendered in key order.
type attrs map[string]string

// String renders the set as ` key="value"` pairs, escaped.
func (a attrs) String() string {
	if len(a) == 0 {
		return ""
	}
	keys := make([]string, 0, len(a))
	for key := range a {
		if strings.TrimSpace(key) != "" {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, key := range keys {
		b.WriteByte(' ')
		b.WriteString(html.EscapeString(key))
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a[key]))
		b.WriteByte('"')
	}
	return b.String()
}

func (a attrs) clone() attrs {
	out := make(attrs, len(a)+1)
	for key, value := range a {
		out[key] = value
	}
	return out
}

// control is a descriptor prepared for rendering: input name, html id, class
// and attributes resolved.
type control struct {
	field model.Field
	id    string
	name  string
	class string
	attrs attrs
}

func (p *Parser) prepare(field model.Field) control {
	segments := field.VarID()

	c := control{
		field: field,
		id:    p.idPrefix + strings.Join(segments, "_"),
		class: joinClass(defaultClass(field.Type), field.Class),
		attrs: attrs{},
	}

	var name strings.Builder
	name.WriteString(p.inputName)
	for _, segment := range segments {
		name.WriteString("[" + segment + "]")
	}
	c.name = name.String()

	for key, value := range field.Attributes {
		switch key {
		case "id":
			if value != "" {
				c.id = value
			}
		case "name":
			if value != "" {
				c.name = value
			}
		case "class":
			c.class = joinClass(c.class, value)
		default:
			c.attrs[key] = value
		}
	}
	for rule, value := range field.Validations {
		rule = strings.TrimSpace(rule)
		if rule == "" {
			continue
		}
		if value == "" {
			value = "true"
		}
		c.attrs["data-parsley-"+rule] = value
	}
	return c
}

// plainAttrs renders the descriptor attributes for structural and line
// elements, which carry no input identity.
func plainAttrs(field model.Field) attrs {
	out := attrs{}
	for key, value := range field.Attributes {
		if key == "class" {
			continue
		}
		out[key] = value
	}
	return out
}

func defaultClass(typ model.FieldType) string {
	switch typ {
	case model.FieldTypeText, model.FieldTypeTextReadonly,
		model.FieldTypeTextarea, model.FieldTypeTextareaReadonly, model.FieldTypeMarkitup,
		model.FieldTypeSelect, model.FieldTypeMultiselect:
		return "form-control"
	default:
		return ""
	}
}

func joinClass(parts ...string) string {
	var out []string
	for _, part := range parts {
		for _, class := range strings.Fields(part) {
			if !slices.Contains(out, class) {
				out = append(out, class)
			}
		}
	}
	return strings.Join(out, " ")
}
