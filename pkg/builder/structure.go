package builder

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/goliatone/go-mform/pkg/model"
)

// AddFieldset opens a fieldset with legend. Fields added afterwards belong to
// it until CloseFieldset or the next fieldset.
func (b *Builder) AddFieldset(legend string, attrs map[string]string) *Element {
	return b.AddElement(model.FieldTypeFieldset, "", Value(legend), Attributes(attrs))
}

func (b *Builder) CloseFieldset() *Element {
	return b.AddElement(model.FieldTypeCloseFieldset, "")
}

// AddFieldsetArea declares a fieldset wrapping form and closes it. It returns
// the opener.
func (b *Builder) AddFieldsetArea(legend string, form any, attrs map[string]string) *Element {
	opener := b.AddFieldset(legend, attrs)
	b.AddForm(form)
	b.CloseFieldset()
	return opener
}

// AddTabElement declares a tab wrapping form and closes it. It returns the
// opener.
func (b *Builder) AddTabElement(label string, form any, attrs map[string]string) *Element {
	opener := b.AddElement(model.FieldTypeTab, "", Value(label), Attributes(attrs))
	b.AddForm(form)
	b.AddElement(model.FieldTypeCloseTab, "")
	return opener
}

// AddCollapseElement declares a collapse panel wrapping form and closes it.
// The group behaviour is carried by data-group-* attributes on both the
// opener and the closer. It returns the opener.
func (b *Builder) AddCollapseElement(label string, form any, attrs map[string]string, accordion, hideToggleLinks bool, openCollapse int) *Element {
	group := CollapseGroup(accordion, hideToggleLinks, openCollapse)

	opener := b.AddElement(model.FieldTypeCollapse, "", Value(label), Attributes(attrs)).SetAttributes(group)
	b.AddForm(form)
	b.AddElement(model.FieldTypeCloseCollapse, "", Attributes(group))
	return opener
}

// CollapseGroup returns the data-group-* attributes shared by a collapse
// opener and its closer.
func CollapseGroup(accordion, hideToggleLinks bool, openCollapse int) map[string]string {
	return map[string]string{
		"data-group-accordion":         boolDigit(accordion),
		"data-group-hide-toggle-links": strconv.FormatBool(hideToggleLinks),
		"data-group-open-collapse":     strconv.Itoa(openCollapse),
	}
}

// AddAccordionElement is AddCollapseElement with the accordion flag set.
func (b *Builder) AddAccordionElement(label string, form any, attrs map[string]string, hideToggleLinks bool, openCollapse int) *Element {
	return b.AddCollapseElement(label, form, attrs, true, hideToggleLinks, openCollapse)
}

// AddForm embeds form as rendered markup. Accepted forms: nil, string,
// Subform, func() Subform, func(*Builder) (filled through a Sub builder) and
// func() string. Anything else, and render failures, are logged and ignored.
func (b *Builder) AddForm(form any) *Builder {
	switch f := form.(type) {
	case nil:
	case string:
		if f != "" {
			b.AddHtml(f)
		}
	case Subform:
		b.embedFields(f.Fields())
	case func() Subform:
		if sub := f(); sub != nil {
			b.embedFields(sub.Fields())
		}
	case func(*Builder):
		sub := b.Sub()
		f(sub)
		b.embedFields(sub.Fields())
	case func() string:
		if html := f(); html != "" {
			b.AddHtml(html)
		}
	default:
		b.logger.Warn("ignoring unsupported subform", zap.String("type", fmt.Sprintf("%T", form)))
	}
	return b
}

func (b *Builder) embedFields(fields []model.Field) {
	if len(fields) == 0 {
		return
	}
	if b.subforms == nil {
		b.logger.Warn("ignoring subform without renderer", zap.Int("fields", len(fields)))
		return
	}
	html, err := b.subforms(b.ctx, fields)
	if err != nil {
		b.logger.Warn("ignoring subform that failed to render", zap.Error(err))
		return
	}
	b.AddHtml(html)
}

func boolDigit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
