package model

import (
	"slices"
	"strings"
)

// FieldType is the closed vocabulary of form field kinds the builder can
// declare and the parser knows how to render.
type FieldType string

const (
	FieldTypeText             FieldType = "text"
	FieldTypeHidden           FieldType = "hidden"
	FieldTypeTextReadonly     FieldType = "text-readonly"
	FieldTypeTextarea         FieldType = "textarea"
	FieldTypeTextareaReadonly FieldType = "textarea-readonly"
	FieldTypeMarkitup         FieldType = "markitup"
	FieldTypeSelect           FieldType = "select"
	FieldTypeMultiselect      FieldType = "multiselect"
	FieldTypeCheckbox         FieldType = "checkbox"
	FieldTypeMulticheckbox    FieldType = "multicheckbox"
	FieldTypeRadio            FieldType = "radio"
	FieldTypeLink             FieldType = "link"
	FieldTypeLinklist         FieldType = "linklist"
	FieldTypeMedia            FieldType = "media"
	FieldTypeMedialist        FieldType = "medialist"
	FieldTypeImglist          FieldType = "imglist"
	FieldTypeCustomLink       FieldType = "custom-link"
	FieldTypeFieldset         FieldType = "fieldset"
	FieldTypeCloseFieldset    FieldType = "close-fieldset"
	FieldTypeTab              FieldType = "tab"
	FieldTypeCloseTab         FieldType = "close-tab"
	FieldTypeCollapse         FieldType = "collapse"
	FieldTypeCloseCollapse    FieldType = "close-collapse"
	FieldTypeHTML             FieldType = "html"
	FieldTypeHeadline         FieldType = "headline"
	FieldTypeDescription      FieldType = "description"
	FieldTypeAlert            FieldType = "alert"
)

var fieldTypes = []FieldType{
	FieldTypeText,
	FieldTypeHidden,
	FieldTypeTextReadonly,
	FieldTypeTextarea,
	FieldTypeTextareaReadonly,
	FieldTypeMarkitup,
	FieldTypeSelect,
	FieldTypeMultiselect,
	FieldTypeCheckbox,
	FieldTypeMulticheckbox,
	FieldTypeRadio,
	FieldTypeLink,
	FieldTypeLinklist,
	FieldTypeMedia,
	FieldTypeMedialist,
	FieldTypeImglist,
	FieldTypeCustomLink,
	FieldTypeFieldset,
	FieldTypeCloseFieldset,
	FieldTypeTab,
	FieldTypeCloseTab,
	FieldTypeCollapse,
	FieldTypeCloseCollapse,
	FieldTypeHTML,
	FieldTypeHeadline,
	FieldTypeDescription,
	FieldTypeAlert,
}

// FieldTypes returns the full vocabulary in declaration order.
func FieldTypes() []FieldType {
	return slices.Clone(fieldTypes)
}

// Valid reports whether t belongs to the vocabulary.
func (t FieldType) Valid() bool {
	return slices.Contains(fieldTypes, t)
}

func (t FieldType) String() string {
	return string(t)
}

// ParseFieldType converts a raw tag into a FieldType. Unknown tags return an
// *UnknownFieldTypeError wrapping ErrUnknownFieldType.
func ParseFieldType(raw string) (FieldType, error) {
	candidate := FieldType(strings.ToLower(strings.TrimSpace(raw)))
	if !candidate.Valid() {
		return "", &UnknownFieldTypeError{Type: raw}
	}
	return candidate, nil
}

// Mode tells whether the surrounding operation creates a record or edits a
// loaded one.
type Mode string

const (
	ModeAdd  Mode = "add"
	ModeEdit Mode = "edit"
)

// ParseMode normalises a raw mode string. Anything other than "edit" is add.
func ParseMode(raw string) Mode {
	if strings.EqualFold(strings.TrimSpace(raw), string(ModeEdit)) {
		return ModeEdit
	}
	return ModeAdd
}

// Option is a single select/radio/checkbox entry. When Options is non-empty
// the entry is an opt-group and Key carries the group label.
type Option struct {
	Key     string   `json:"key"`
	Label   string   `json:"label,omitempty"`
	Options []Option `json:"options,omitempty"`
}

// Opt builds a plain key/label option.
func Opt(key, label string) Option {
	return Option{Key: key, Label: label}
}

// Group builds an opt-group labelled label.
func Group(label string, options ...Option) Option {
	return Option{Key: label, Label: label, Options: options}
}

// IsGroup reports whether the option holds nested options.
func (o Option) IsGroup() bool {
	return len(o.Options) > 0
}

// CountOptions returns the number of rendered entries, counting group labels
// plus their children.
func CountOptions(options []Option) int {
	count := 0
	for _, option := range options {
		count++
		if option.IsGroup() {
			count += len(option.Options)
		}
	}
	return count
}

// Info pairs a text with an optional icon (class name or inline SVG).
type Info struct {
	Text string `json:"text,omitempty"`
	Icon string `json:"icon,omitempty"`
}

// Empty reports whether neither text nor icon is set.
func (i Info) Empty() bool {
	return strings.TrimSpace(i.Text) == "" && strings.TrimSpace(i.Icon) == ""
}

// Field describes one declared form field. Descriptors are created by the
// builder, owned by it until rendering, and treated as read-only by the
// parser.
type Field struct {
	Position         int               `json:"position"`
	Type             FieldType         `json:"type"`
	ID               string            `json:"id,omitempty"`
	Value            string            `json:"value,omitempty"`
	DefaultValue     string            `json:"defaultValue,omitempty"`
	Mode             Mode              `json:"mode"`
	Label            string            `json:"label,omitempty"`
	Class            string            `json:"class,omitempty"`
	Attributes       map[string]string `json:"attributes,omitempty"`
	Options          []Option          `json:"options,omitempty"`
	Toggles          map[string]string `json:"toggles,omitempty"`
	DisabledOptions  []string          `json:"disabledOptions,omitempty"`
	Validations      map[string]string `json:"validations,omitempty"`
	Parameters       map[string]string `json:"parameters,omitempty"`
	Category         string            `json:"category,omitempty"`
	Full             bool              `json:"full,omitempty"`
	Multiple         bool              `json:"multiple,omitempty"`
	Size             string            `json:"size,omitempty"`
	FormItemColClass string            `json:"formItemColClass,omitempty"`
	LabelColClass    string            `json:"labelColClass,omitempty"`
	Tooltip          Info              `json:"tooltip,omitempty"`
	Collapse         Info              `json:"collapse,omitempty"`
	TabIcon          string            `json:"tabIcon,omitempty"`
	PullRight        bool              `json:"pullRight,omitempty"`
}

// FormModel is the ordered descriptor sequence handed to the parser.
type FormModel struct {
	Mode   Mode    `json:"mode"`
	Fields []Field `json:"fields"`
}
