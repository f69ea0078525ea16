package builder

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-mform/pkg/model"
	"github.com/goliatone/go-mform/pkg/sqloptions"
)

// Element is the handle returned by every Add call. Set methods mutate the
// descriptor it points at and return the same handle; the embedded Builder
// keeps Add calls chainable.
type Element struct {
	*Builder
	index int
}

func (e *Element) field() *model.Field {
	return &e.Builder.fields[e.index]
}

// Field returns a copy of the descriptor.
func (e *Element) Field() model.Field {
	return e.field().Clone()
}

func (e *Element) SetLabel(label string) *Element {
	e.field().Label = label
	return e
}

func (e *Element) SetPlaceholder(placeholder string) *Element {
	return e.setAttr("placeholder", placeholder)
}

// SetFull renders the field in the full width wrapper.
func (e *Element) SetFull() *Element {
	e.field().Full = true
	return e
}

func (e *Element) SetFormItemColClass(class string) *Element {
	e.field().FormItemColClass = class
	return e
}

func (e *Element) SetLabelColClass(class string) *Element {
	e.field().LabelColClass = class
	return e
}

// SetAttributes applies every entry through SetAttribute.
func (e *Element) SetAttributes(attrs map[string]string) *Element {
	for name, value := range attrs {
		e.SetAttribute(name, value)
	}
	return e
}

// SetAttribute stores an html attribute. Reserved names configure the
// descriptor instead: label, class, full, multiple, size, default-value,
// catId, form-item-col-class, label-col-class, info-tooltip,
// info-tooltip-icon, info-collapse, info-collapse-icon, tab-icon and
// pull-right.
func (e *Element) SetAttribute(name, value string) *Element {
	f := e.field()
	switch strings.TrimSpace(name) {
	case "":
		return e
	case "label":
		f.Label = value
	case "class":
		f.Class = value
	case "full":
		f.Full = flag(value)
	case "multiple":
		f.Multiple = flag(value)
	case "size":
		f.Size = strings.TrimSpace(value)
	case "default-value":
		f.DefaultValue = value
	case "catId":
		f.Category = value
	case "form-item-col-class":
		f.FormItemColClass = value
	case "label-col-class":
		f.LabelColClass = value
	case "info-tooltip":
		f.Tooltip.Text = value
	case "info-tooltip-icon":
		f.Tooltip.Icon = value
	case "info-collapse":
		f.Collapse.Text = value
	case "info-collapse-icon":
		f.Collapse.Icon = value
	case "tab-icon":
		f.TabIcon = value
	case "pull-right":
		f.PullRight = flag(value)
	default:
		return e.setAttr(name, value)
	}
	return e
}

func (e *Element) setAttr(name, value string) *Element {
	f := e.field()
	if f.Attributes == nil {
		f.Attributes = make(map[string]string)
	}
	f.Attributes[strings.TrimSpace(name)] = value
	return e
}

// SetValidations merges validation rules.
func (e *Element) SetValidations(rules map[string]string) *Element {
	for rule, value := range rules {
		e.SetValidation(rule, value)
	}
	return e
}

func (e *Element) SetValidation(rule, value string) *Element {
	rule = strings.TrimSpace(rule)
	if rule == "" {
		return e
	}
	f := e.field()
	if f.Validations == nil {
		f.Validations = make(map[string]string)
	}
	f.Validations[rule] = value
	return e
}

func (e *Element) SetDefaultValue(value string) *Element {
	e.field().DefaultValue = value
	return e
}

// SetOptions merges options by key: an existing key gets its label and
// children replaced in place, a new key is appended.
func (e *Element) SetOptions(options []model.Option) *Element {
	f := e.field()
	for _, option := range options {
		f.Options = mergeOption(f.Options, option)
	}
	return e
}

func (e *Element) SetOption(key, label string) *Element {
	return e.SetOptions([]model.Option{model.Opt(key, label)})
}

// SetToggleOptions maps option keys to the element they toggle.
func (e *Element) SetToggleOptions(toggles map[string]string) *Element {
	if len(toggles) == 0 {
		return e
	}
	f := e.field()
	if f.Toggles == nil {
		f.Toggles = make(map[string]string, len(toggles))
	}
	for key, target := range toggles {
		f.Toggles[key] = target
	}
	return e
}

func (e *Element) SetDisableOptions(keys ...string) *Element {
	for _, key := range keys {
		e.SetDisableOption(key)
	}
	return e
}

func (e *Element) SetDisableOption(key string) *Element {
	f := e.field()
	for _, existing := range f.DisabledOptions {
		if existing == key {
			return e
		}
	}
	f.DisabledOptions = append(f.DisabledOptions, key)
	return e
}

// SetSQLOptions loads options from a query. Failures are logged and leave the
// options untouched.
func (e *Element) SetSQLOptions(ctx context.Context, db sqloptions.Querier, query string, args ...any) *Element {
	options, err := sqloptions.Load(ctx, db, query, args...)
	if err != nil {
		e.logger.Warn("ignoring sql options",
			zap.String("id", e.field().ID),
			zap.String("query", query),
			zap.Error(err),
		)
		return e
	}
	return e.SetOptions(options)
}

func (e *Element) SetMultiple() *Element {
	e.field().Multiple = true
	return e
}

// SetSize sets the select size; "full" sizes the control to its options.
func (e *Element) SetSize(size string) *Element {
	e.field().Size = strings.TrimSpace(size)
	return e
}

func (e *Element) SetCategory(id string) *Element {
	return e.SetAttribute("catId", id)
}

// SetParameters merges widget parameters.
func (e *Element) SetParameters(params map[string]string) *Element {
	for key, value := range params {
		e.SetParameter(key, value)
	}
	return e
}

func (e *Element) SetParameter(key, value string) *Element {
	key = strings.TrimSpace(key)
	if key == "" {
		return e
	}
	f := e.field()
	if f.Parameters == nil {
		f.Parameters = make(map[string]string)
	}
	f.Parameters[key] = value
	return e
}

// SetTooltipInfo attaches a tooltip shown next to the label. icon may be a
// class name or inline SVG.
func (e *Element) SetTooltipInfo(text, icon string) *Element {
	e.field().Tooltip = model.Info{Text: text, Icon: icon}
	return e
}

func (e *Element) SetTabIcon(icon string) *Element {
	e.field().TabIcon = icon
	return e
}

func (e *Element) SetCollapseInfo(text, icon string) *Element {
	e.field().Collapse = model.Info{Text: text, Icon: icon}
	return e
}

func (e *Element) PullRight() *Element {
	e.field().PullRight = true
	return e
}

func mergeOption(options []model.Option, option model.Option) []model.Option {
	for i := range options {
		if options[i].Key == option.Key {
			options[i].Label = option.Label
			options[i].Options = model.CloneOptions(option.Options)
			return options
		}
	}
	return append(options, model.Option{
		Key:     option.Key,
		Label:   option.Label,
		Options: model.CloneOptions(option.Options),
	})
}

// flag reads a boolean attribute. Presence counts as true unless the value
// spells a negative.
func flag(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "0", "false", "no", "off":
		return false
	default:
		return true
	}
}
