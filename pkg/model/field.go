package model

import (
	"maps"
	"slices"
	"strings"
)

// VarID splits the identifier into its record path segments ("1.2" becomes
// ["1", "2"]). An empty identifier yields nil.
func (f Field) VarID() []string {
	id := strings.TrimSpace(f.ID)
	if id == "" {
		return nil
	}
	parts := strings.Split(id, ".")
	out := parts[:0]
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// DisplayValue returns the value a control should show: the resolved value,
// or the default value in add mode when nothing was resolved.
func (f Field) DisplayValue() string {
	if f.Value == "" && f.Mode == ModeAdd {
		return f.DefaultValue
	}
	return f.Value
}

// SelectsOption reports whether the option with key should render selected
// (or checked). The option matches the current value; in add mode it also
// matches the default value. Multi-valued fields in edit mode treat the value
// as a comma-joined set.
func (f Field) SelectsOption(key string) bool {
	if f.Mode == ModeEdit && f.Multiple {
		for _, part := range strings.Split(f.Value, ",") {
			if strings.TrimSpace(part) == key {
				return true
			}
		}
		return false
	}
	if key == f.Value {
		return true
	}
	return f.Mode == ModeAdd && f.DefaultValue != "" && key == f.DefaultValue
}

// OptionDisabled reports whether key was marked disabled.
func (f Field) OptionDisabled(key string) bool {
	return slices.Contains(f.DisabledOptions, key)
}

// Attribute returns an attribute value and whether it was set.
func (f Field) Attribute(name string) (string, bool) {
	if f.Attributes == nil {
		return "", false
	}
	value, ok := f.Attributes[name]
	return value, ok
}

// Clone returns a deep copy so callers can mutate the result without touching
// the builder-owned descriptor.
func (f Field) Clone() Field {
	out := f
	out.Attributes = cloneMap(f.Attributes)
	out.Toggles = cloneMap(f.Toggles)
	out.Validations = cloneMap(f.Validations)
	out.Parameters = cloneMap(f.Parameters)
	out.DisabledOptions = slices.Clone(f.DisabledOptions)
	out.Options = CloneOptions(f.Options)
	return out
}

// CloneOptions deep copies an option collection.
func CloneOptions(options []Option) []Option {
	if options == nil {
		return nil
	}
	out := make([]Option, len(options))
	for i, option := range options {
		out[i] = Option{
			Key:     option.Key,
			Label:   option.Label,
			Options: CloneOptions(option.Options),
		}
	}
	return out
}

// CloneFields deep copies a descriptor sequence.
func CloneFields(fields []Field) []Field {
	if fields == nil {
		return nil
	}
	out := make([]Field, len(fields))
	for i, field := range fields {
		out[i] = field.Clone()
	}
	return out
}

func cloneMap(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	return maps.Clone(src)
}
