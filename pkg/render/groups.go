package render

import (
	"github.com/goliatone/go-mform/pkg/model"
)

// openFieldset opens a fieldset, closing the previous one first when it is
// still open.
func (p *Parser) openFieldset(st *renderState, field model.Field) error {
	if st.fieldsetOpen {
		if err := p.closeFieldset(st); err != nil {
			return err
		}
	}

	legend, err := p.fragment(st, "legend", map[string]any{"value": field.Value})
	if err != nil {
		return err
	}
	if err := p.emit(st, "fieldset-open", map[string]any{
		"class":      field.Class,
		"attributes": plainAttrs(field).String(),
		"legend":     legend,
	}); err != nil {
		return err
	}
	st.fieldsetOpen = true
	return nil
}

func (p *Parser) closeFieldset(st *renderState) error {
	if err := p.emit(st, "fieldset-close", nil); err != nil {
		return err
	}
	st.fieldsetOpen = false
	return nil
}

func (p *Parser) openTab(st *renderState, field model.Field) error {
	return p.emit(st, "tab-open", map[string]any{
		"id":         "mform-tab-" + p.groupID(),
		"value":      field.Value,
		"class":      field.Class,
		"attributes": plainAttrs(field).String(),
		"icon":       iconMarkup(field.TabIcon),
	})
}

func (p *Parser) openCollapse(st *renderState, field model.Field) error {
	return p.emit(st, "collapse-open", map[string]any{
		"id":         "mform-collapse-" + p.groupID(),
		"value":      field.Value,
		"class":      field.Class,
		"attributes": plainAttrs(field).String(),
		"icon":       iconMarkup(field.Collapse.Icon),
		"info":       field.Collapse.Text,
	})
}
