package formfile

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-mform/pkg/builder"
	"github.com/goliatone/go-mform/pkg/model"
)

// Document is a declarative form.
type Document struct {
	Source string            `json:"-" yaml:"-"`
	Mode   string            `json:"mode,omitempty" yaml:"mode,omitempty"`
	Theme  string            `json:"theme,omitempty" yaml:"theme,omitempty"`
	Values map[string]string `json:"values,omitempty" yaml:"values,omitempty"`
	Fields []FieldSpec       `json:"fields" yaml:"fields"`
}

// FieldSpec declares one field. Fieldsets, tabs and collapses may nest their
// body under Fields; the matching closer is added after it.
type FieldSpec struct {
	Type        string            `json:"type" yaml:"type"`
	ID          string            `json:"id,omitempty" yaml:"id,omitempty"`
	Value       string            `json:"value,omitempty" yaml:"value,omitempty"`
	Label       string            `json:"label,omitempty" yaml:"label,omitempty"`
	Class       string            `json:"class,omitempty" yaml:"class,omitempty"`
	Placeholder string            `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Attributes  map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Options     []OptionSpec      `json:"options,omitempty" yaml:"options,omitempty"`
	Validations map[string]string `json:"validations,omitempty" yaml:"validations,omitempty"`
	Default     string            `json:"default,omitempty" yaml:"default,omitempty"`
	Parameters  map[string]string `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Category    string            `json:"category,omitempty" yaml:"category,omitempty"`
	Size        string            `json:"size,omitempty" yaml:"size,omitempty"`
	Multiple    bool              `json:"multiple,omitempty" yaml:"multiple,omitempty"`
	Full        bool              `json:"full,omitempty" yaml:"full,omitempty"`
	PullRight   bool              `json:"pull_right,omitempty" yaml:"pull_right,omitempty"`
	Toggle      map[string]string `json:"toggle,omitempty" yaml:"toggle,omitempty"`
	Disabled    []string          `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	SQL         string            `json:"sql,omitempty" yaml:"sql,omitempty"`
	Tooltip     *InfoSpec         `json:"tooltip,omitempty" yaml:"tooltip,omitempty"`
	Info        *InfoSpec         `json:"info,omitempty" yaml:"info,omitempty"`
	Icon        string            `json:"icon,omitempty" yaml:"icon,omitempty"`

	Accordion       bool `json:"accordion,omitempty" yaml:"accordion,omitempty"`
	HideToggleLinks bool `json:"hide_toggle_links,omitempty" yaml:"hide_toggle_links,omitempty"`
	Open            int  `json:"open,omitempty" yaml:"open,omitempty"`

	Fields []FieldSpec `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// OptionSpec is a select entry; nested options make it an opt-group.
type OptionSpec struct {
	Key     string       `json:"key" yaml:"key"`
	Label   string       `json:"label,omitempty" yaml:"label,omitempty"`
	Options []OptionSpec `json:"options,omitempty" yaml:"options,omitempty"`
}

// InfoSpec is a text with an optional icon.
type InfoSpec struct {
	Text string `json:"text" yaml:"text"`
	Icon string `json:"icon,omitempty" yaml:"icon,omitempty"`
}

// FormMode returns the document mode, add unless "edit" is given.
func (d Document) FormMode() model.Mode {
	return model.ParseMode(d.Mode)
}

// BuilderOptions returns the builder options implied by the document: its
// mode and its loaded values.
func (d Document) BuilderOptions() []builder.Option {
	options := []builder.Option{builder.WithMode(d.FormMode())}
	if len(d.Values) > 0 {
		options = append(options, builder.WithValues(builder.MapValues(d.Values)))
	}
	return options
}

// Load reads and parses the form file at name.
func Load(fsys fs.FS, name string) (Document, error) {
	if fsys == nil {
		return Document{}, fmt.Errorf("formfile: no filesystem for %s", name)
	}
	if !IsFormFile(name) {
		return Document{}, fmt.Errorf("formfile: %s is not a .yaml, .yml or .json file", name)
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Document{}, fmt.Errorf("formfile: read %s: %w", name, err)
	}
	return Parse(data, name)
}

// Parse decodes a JSON or YAML document. source names the document in errors.
func Parse(data []byte, source string) (Document, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, fmt.Errorf("formfile: %s is empty", source)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = Document{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("formfile: parse %s: %w", source, err)
		}
	}
	doc.Source = source
	return doc, nil
}

// ParseValues decodes a flat identifier to value map, used for loaded record
// fixtures.
func ParseValues(data []byte, source string) (map[string]string, error) {
	values := map[string]string{}
	if len(strings.TrimSpace(string(data))) == 0 {
		return values, nil
	}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("formfile: parse values %s: %w", source, err)
	}
	return values, nil
}

// IsFormFile reports whether name carries a supported extension.
func IsFormFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func (o OptionSpec) option() model.Option {
	out := model.Option{Key: o.Key, Label: o.Label}
	if out.Label == "" {
		out.Label = o.Key
	}
	for _, child := range o.Options {
		out.Options = append(out.Options, child.option())
	}
	if len(out.Options) > 0 && out.Key == "" {
		out.Key = out.Label
	}
	return out
}

func convertOptions(specs []OptionSpec) []model.Option {
	if len(specs) == 0 {
		return nil
	}
	out := make([]model.Option, 0, len(specs))
	for _, spec := range specs {
		out = append(out, spec.option())
	}
	return out
}
