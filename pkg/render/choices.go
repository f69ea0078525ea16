package render

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-mform/pkg/model"
)

func (p *Parser) optionsElement(st *renderState, field model.Field) error {
	if field.Type == model.FieldTypeMultiselect {
		field.Multiple = true
	}
	c := p.prepare(field)

	if field.Multiple {
		c.attrs["multiple"] = "multiple"
	}
	switch field.Size {
	case "":
	case "full":
		c.attrs["size"] = sizeFullPlaceholder
	default:
		c.attrs["size"] = field.Size
	}

	options, err := p.renderOptions(st, field, field.Options)
	if err != nil {
		return err
	}

	attributes := c.attrs.String()
	if field.Size == "full" {
		attributes = strings.ReplaceAll(attributes, sizeFullPlaceholder, strconv.Itoa(model.CountOptions(field.Options)))
	}

	data := map[string]any{
		"id":         c.id,
		"var_id":     c.name,
		"class":      c.class,
		"attributes": attributes,
		"options":    options,
		"hidden":     "",
		"javascript": "",
	}

	if field.Multiple {
		// the visible select only drives the paired hidden input, which
		// submits the comma joined selection
		hiddenID := "hidden_" + c.id
		hidden, err := p.fragment(st, "text", map[string]any{
			"type":       "hidden",
			"id":         hiddenID,
			"var_id":     c.name,
			"value":      field.DisplayValue(),
			"class":      "",
			"attributes": "",
		})
		if err != nil {
			return err
		}
		data["var_id"] = ""
		data["hidden"] = hidden
		data["javascript"] = multiselectScript(c.id, hiddenID)
	}

	element, err := p.fragment(st, "select", data)
	if err != nil {
		return err
	}
	return p.wrap(st, "default", field, c.id, element)
}

func (p *Parser) renderOptions(st *renderState, field model.Field, options []model.Option) (string, error) {
	var b strings.Builder
	for _, option := range options {
		if option.IsGroup() {
			inner, err := p.renderOptions(st, field, option.Options)
			if err != nil {
				return "", err
			}
			out, err := p.fragment(st, "optgroup", map[string]any{
				"label":   firstNonEmpty(option.Label, option.Key),
				"options": inner,
			})
			if err != nil {
				return "", err
			}
			b.WriteString(out)
			continue
		}

		a := attrs{}
		if field.SelectsOption(option.Key) {
			a["selected"] = "selected"
		}
		if field.OptionDisabled(option.Key) {
			a["disabled"] = "disabled"
		}
		if target, ok := field.Toggles[option.Key]; ok {
			a["data-toggle-item"] = target
		}
		out, err := p.fragment(st, "option", map[string]any{
			"value":      option.Key,
			"label":      firstNonEmpty(option.Label, option.Key),
			"attributes": a.String(),
		})
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	}
	return b.String(), nil
}

// checkboxElement renders the first option only. Checkbox groups with
// several options are not supported.
func (p *Parser) checkboxElement(st *renderState, field model.Field) error {
	c := p.prepare(field)

	var element string
	if leaves := leafOptions(field.Options); len(leaves) > 0 {
		out, err := p.check(st, "checkbox", c, c.id, leaves[0])
		if err != nil {
			return err
		}
		element = out
	}
	return p.wrap(st, "default", field, c.id, element)
}

// radioElement renders one radio per option, suffixing the html id with the
// option's 1-based position.
func (p *Parser) radioElement(st *renderState, field model.Field) error {
	c := p.prepare(field)

	var b strings.Builder
	for i, option := range leafOptions(field.Options) {
		out, err := p.check(st, "radio", c, c.id+strconv.Itoa(i+1), option)
		if err != nil {
			return err
		}
		b.WriteString(out)
	}
	return p.wrap(st, "default", field, c.id, b.String())
}

func (p *Parser) check(st *renderState, name string, c control, id string, option model.Option) (string, error) {
	a := c.attrs.clone()
	if c.field.SelectsOption(option.Key) {
		a["checked"] = "checked"
	}
	if c.field.OptionDisabled(option.Key) {
		a["disabled"] = "disabled"
	}
	if target, ok := c.field.Toggles[option.Key]; ok {
		a["data-toggle-item"] = target
	}
	if c.class != "" {
		a["class"] = c.class
	}
	return p.fragment(st, name, map[string]any{
		"id":         id,
		"var_id":     c.name,
		"value":      option.Key,
		"label":      option.Label,
		"attributes": a.String(),
	})
}

// leafOptions flattens opt-groups for controls without a grouping element.
func leafOptions(options []model.Option) []model.Option {
	var out []model.Option
	for _, option := range options {
		if option.IsGroup() {
			out = append(out, leafOptions(option.Options)...)
			continue
		}
		out = append(out, option)
	}
	return out
}

func multiselectScript(selectID, hiddenID string) string {
	return `<script type="text/javascript">jQuery(function($){$("#` + scriptID(selectID) +
		`").on("change",function(){var v=$(this).val();$("#` + scriptID(hiddenID) +
		`").val(v?v.join(","):"");});});</script>`
}

// scriptID keeps only characters that are safe inside a quoted jQuery id
// selector.
func scriptID(id string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return -1
		}
	}, id)
}
