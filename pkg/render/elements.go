package render

import (
	"github.com/goliatone/go-mform/pkg/model"
)

const (
	defaultLabelColClass    = "col-sm-2"
	defaultFormItemColClass = "col-sm-10"
)

// wrap renders element inside the wrapper template together with the label
// and tooltip fragments. The hidden wrapper carries no label.
func (p *Parser) wrap(st *renderState, wrapper string, field model.Field, labelFor, element string) error {
	data := map[string]any{
		"element":             element,
		"label_col_class":     firstNonEmpty(field.LabelColClass, defaultLabelColClass),
		"form_item_col_class": firstNonEmpty(field.FormItemColClass, defaultFormItemColClass),
		"pull_right":          field.PullRight,
		"label":               "",
		"info":                "",
	}

	if wrapper != "hidden" {
		label, err := p.fragment(st, "label", map[string]any{
			"id":    labelFor,
			"value": field.Label,
		})
		if err != nil {
			return err
		}
		data["label"] = label

		if !field.Tooltip.Empty() {
			info, err := p.fragment(st, "info", map[string]any{
				"value": field.Tooltip.Text,
				"icon":  iconMarkup(firstNonEmpty(field.Tooltip.Icon, defaultInfoIcon)),
			})
			if err != nil {
				return err
			}
			data["info"] = info
		}
	}

	return p.emit(st, wrapper, data)
}

func (p *Parser) inputElement(st *renderState, field model.Field) error {
	c := p.prepare(field)

	inputType := "text"
	wrapper := "default"
	switch field.Type {
	case model.FieldTypeHidden:
		inputType, wrapper = "hidden", "hidden"
		c.class = ""
	case model.FieldTypeTextReadonly:
		c.attrs["readonly"] = "readonly"
	}
	if override, ok := c.attrs["type"]; ok {
		if override != "" && field.Type == model.FieldTypeText {
			inputType = override
		}
		delete(c.attrs, "type")
	}
	if field.Full && wrapper == "default" {
		wrapper = "default_full"
	}

	element, err := p.fragment(st, "text", map[string]any{
		"type":       inputType,
		"id":         c.id,
		"var_id":     c.name,
		"value":      field.DisplayValue(),
		"class":      c.class,
		"attributes": c.attrs.String(),
	})
	if err != nil {
		return err
	}
	return p.wrap(st, wrapper, field, c.id, element)
}

func (p *Parser) areaElement(st *renderState, field model.Field) error {
	c := p.prepare(field)

	switch field.Type {
	case model.FieldTypeTextareaReadonly:
		c.attrs["readonly"] = "readonly"
	case model.FieldTypeMarkitup:
		c.class = joinClass(c.class, "markitupEditor")
		for key, value := range field.Parameters {
			c.attrs["data-markitup-"+key] = value
		}
	}

	wrapper := "default"
	if field.Full {
		wrapper = "default_full"
	}

	element, err := p.fragment(st, "textarea", map[string]any{
		"id":         c.id,
		"var_id":     c.name,
		"value":      field.DisplayValue(),
		"class":      c.class,
		"attributes": c.attrs.String(),
	})
	if err != nil {
		return err
	}
	return p.wrap(st, wrapper, field, c.id, element)
}

// lineElement emits the raw value inside the template named after the type.
func (p *Parser) lineElement(st *renderState, field model.Field) error {
	return p.emit(st, string(field.Type), map[string]any{
		"output":     field.Value,
		"class":      field.Class,
		"attributes": plainAttrs(field).String(),
	})
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
