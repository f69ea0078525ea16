package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-mform/pkg/model"
)

// CollectValues asks for a value for every input bearing field and returns
// them keyed by field identifier. current seeds the defaults; it is not
// modified. Structural fields, hidden inputs and read-only fields are skipped.
func CollectValues(ctx context.Context, driver Driver, fields []model.Field, current map[string]string) (map[string]string, error) {
	if driver == nil {
		return nil, errors.New("prompt: driver is required")
	}
	values := make(map[string]string, len(current))
	for k, v := range current {
		values[k] = v
	}

	for _, field := range fields {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if field.ID == "" || !collectable(field.Type) {
			continue
		}
		value, err := ask(ctx, driver, field, values[field.ID])
		if err != nil {
			return nil, fmt.Errorf("prompt: field %s: %w", field.ID, err)
		}
		values[field.ID] = value
	}
	return values, nil
}

func collectable(typ model.FieldType) bool {
	switch typ {
	case model.FieldTypeHidden,
		model.FieldTypeTextReadonly,
		model.FieldTypeTextareaReadonly,
		model.FieldTypeFieldset,
		model.FieldTypeCloseFieldset,
		model.FieldTypeTab,
		model.FieldTypeCloseTab,
		model.FieldTypeCollapse,
		model.FieldTypeCloseCollapse,
		model.FieldTypeHTML,
		model.FieldTypeHeadline,
		model.FieldTypeDescription,
		model.FieldTypeAlert:
		return false
	}
	return typ.Valid()
}

func ask(ctx context.Context, driver Driver, field model.Field, current string) (string, error) {
	message := field.Label
	if message == "" {
		message = fmt.Sprintf("%s %s", field.Type, field.ID)
	}
	help := field.Tooltip.Text

	switch field.Type {
	case model.FieldTypeTextarea, model.FieldTypeMarkitup:
		return driver.TextArea(ctx, TextAreaConfig{Message: message, Default: current, Help: help})

	case model.FieldTypeCheckbox:
		options := leaves(field.Options)
		if len(options) == 0 {
			return current, nil
		}
		ok, err := driver.Confirm(ctx, ConfirmConfig{Message: message, Default: current == options[0].Key, Help: help})
		if err != nil || !ok {
			return "", err
		}
		return options[0].Key, nil

	case model.FieldTypeSelect, model.FieldTypeRadio:
		if field.Multiple {
			return askMany(ctx, driver, field, message, help, current)
		}
		options := leaves(field.Options)
		if len(options) == 0 {
			return current, nil
		}
		idx, err := driver.Select(ctx, SelectConfig{
			Message:      message,
			Options:      labels(options),
			DefaultIndex: keyIndex(options, current),
			Help:         help,
		})
		if err != nil {
			return "", err
		}
		if idx < 0 || idx >= len(options) {
			return current, nil
		}
		return options[idx].Key, nil

	case model.FieldTypeMultiselect, model.FieldTypeMulticheckbox:
		return askMany(ctx, driver, field, message, help, current)
	}

	return driver.Input(ctx, InputConfig{Message: message, Default: current, Help: help})
}

func askMany(ctx context.Context, driver Driver, field model.Field, message, help, current string) (string, error) {
	options := leaves(field.Options)
	if len(options) == 0 {
		return current, nil
	}
	var defaults []int
	for _, part := range strings.Split(current, ",") {
		if idx := keyIndex(options, strings.TrimSpace(part)); idx >= 0 {
			defaults = append(defaults, idx)
		}
	}
	picked, err := driver.MultiSelect(ctx, SelectConfig{
		Message:      message,
		Options:      labels(options),
		DefaultIndex: -1,
		Defaults:     defaults,
		Help:         help,
	})
	if err != nil {
		return "", err
	}
	keys := make([]string, 0, len(picked))
	for _, idx := range picked {
		if idx >= 0 && idx < len(options) {
			keys = append(keys, options[idx].Key)
		}
	}
	return strings.Join(keys, ","), nil
}

func leaves(options []model.Option) []model.Option {
	var out []model.Option
	for _, option := range options {
		if option.IsGroup() {
			out = append(out, leaves(option.Options)...)
			continue
		}
		out = append(out, option)
	}
	return out
}

// labels keeps prompt entries distinct when two options share a label.
func labels(options []model.Option) []string {
	out := make([]string, len(options))
	for i, option := range options {
		label := option.Label
		if label == "" {
			label = option.Key
		}
		out[i] = fmt.Sprintf("%s (%s)", label, option.Key)
	}
	return out
}

func keyIndex(options []model.Option, key string) int {
	if key == "" {
		return -1
	}
	for i, option := range options {
		if option.Key == key {
			return i
		}
	}
	return -1
}
