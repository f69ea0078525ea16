package render

import (
	"maps"

	"github.com/goliatone/go-mform/pkg/model"
	"github.com/goliatone/go-mform/pkg/widgets"
)

// widgetElement delegates the control markup to the widget renderer and only
// wraps it with the label.
func (p *Parser) widgetElement(st *renderState, field model.Field) error {
	if p.widgets == nil {
		return ErrNoWidgetRenderer
	}
	c := p.prepare(field)

	var slot string
	if segments := field.VarID(); len(segments) > 0 {
		slot = segments[0]
	}

	params := maps.Clone(field.Parameters)
	if field.Category != "" {
		if params == nil {
			params = make(map[string]string, 1)
		}
		if _, ok := params["category"]; !ok {
			params["category"] = field.Category
		}
	}

	req := widgets.Request{
		Type:       field.Type,
		ID:         slot,
		InputName:  firstNonEmpty(widgets.InputName(field.Type, slot), c.name),
		HTMLID:     firstNonEmpty(widgets.ElementID(field.Type, slot), c.id),
		Value:      field.DisplayValue(),
		Parameters: params,
		Attributes: c.attrs,
	}
	if c.class != "" {
		req.Attributes["class"] = c.class
	}

	element, err := p.widgets.RenderWidget(st.ctx, req)
	if err != nil {
		return err
	}
	return p.wrap(st, "default", field, req.HTMLID, element)
}
