package builder

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-mform/pkg/model"
)

// SubformRenderer renders an embedded field sequence to markup.
// render.Parser.RenderFields satisfies it.
type SubformRenderer func(ctx context.Context, fields []model.Field) (string, error)

// Subform is anything that can hand over a field sequence, including
// *Builder itself.
type Subform interface {
	Fields() []model.Field
}

// Option configures a Builder.
type Option func(*Builder)

// WithMode sets whether the form edits a loaded record or creates one.
func WithMode(mode model.Mode) Option {
	return func(b *Builder) {
		b.mode = model.ParseMode(string(mode))
	}
}

// WithValues sets the loaded record consulted in edit mode.
func WithValues(values ValueSource) Option {
	return func(b *Builder) {
		b.values = values
	}
}

// WithLogger sets the logger used for ignored input.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithSubformRenderer sets how embedded forms are rendered.
func WithSubformRenderer(renderer SubformRenderer) Option {
	return func(b *Builder) {
		b.subforms = renderer
	}
}

// WithContext sets the context passed to the subform renderer.
func WithContext(ctx context.Context) Option {
	return func(b *Builder) {
		if ctx != nil {
			b.ctx = ctx
		}
	}
}

// Builder accumulates field descriptors in declaration order. It is not safe
// for concurrent use.
type Builder struct {
	mode     model.Mode
	values   ValueSource
	logger   *zap.Logger
	subforms SubformRenderer
	ctx      context.Context

	fields []model.Field
	next   int
}

// New constructs an empty Builder in add mode.
func New(options ...Option) *Builder {
	b := &Builder{
		mode:   model.ModeAdd,
		logger: zap.NewNop(),
		ctx:    context.Background(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// Sub returns an empty builder sharing mode, values, logger and subform
// renderer.
func (b *Builder) Sub() *Builder {
	return &Builder{
		mode:     b.mode,
		values:   b.values,
		logger:   b.logger,
		subforms: b.subforms,
		ctx:      b.ctx,
	}
}

// Mode returns the builder's mode.
func (b *Builder) Mode() model.Mode {
	return b.mode
}

// Len returns the number of declared fields.
func (b *Builder) Len() int {
	return len(b.fields)
}

// Fields returns deep copies of the declared fields in order.
func (b *Builder) Fields() []model.Field {
	return model.CloneFields(b.fields)
}

// Model returns the declared form.
func (b *Builder) Model() model.FormModel {
	return model.FormModel{Mode: b.mode, Fields: b.Fields()}
}

// AddElement declares a field of typ. Commas in id become periods. In edit
// mode a value found in the loaded record wins over the supplied one.
func (b *Builder) AddElement(typ model.FieldType, id string, options ...ElementOption) *Element {
	cfg := elementConfig{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	b.next++
	field := model.Field{
		Position: b.next,
		Type:     typ,
		ID:       normalizeID(id),
		Mode:     b.mode,
		Value:    cfg.value,
	}
	if loaded, ok := b.lookup(field.ID); ok {
		field.Value = loaded
	}
	b.fields = append(b.fields, field)

	el := &Element{Builder: b, index: len(b.fields) - 1}
	el.SetAttributes(cfg.attributes)
	el.SetOptions(cfg.options)
	el.SetParameters(cfg.parameters)
	el.SetValidations(cfg.validations)
	if cfg.category != "" {
		el.SetCategory(cfg.category)
	}
	if cfg.defaultValue != "" {
		el.SetDefaultValue(cfg.defaultValue)
	}
	return el
}

func (b *Builder) lookup(id string) (string, bool) {
	if b.mode != model.ModeEdit || b.values == nil || id == "" {
		return "", false
	}
	return b.values.Lookup(id)
}

func normalizeID(id string) string {
	return strings.ReplaceAll(strings.TrimSpace(id), ",", ".")
}

type elementConfig struct {
	value        string
	attributes   map[string]string
	options      []model.Option
	parameters   map[string]string
	category     string
	validations  map[string]string
	defaultValue string
}

// ElementOption supplies initial data to AddElement and the Add helpers.
type ElementOption func(*elementConfig)

// Value sets the caller supplied value.
func Value(value string) ElementOption {
	return func(cfg *elementConfig) { cfg.value = value }
}

// Attributes sets initial attributes; reserved keys route like SetAttribute.
func Attributes(attrs map[string]string) ElementOption {
	return func(cfg *elementConfig) { cfg.attributes = attrs }
}

// Options sets the initial options.
func Options(options ...model.Option) ElementOption {
	return func(cfg *elementConfig) { cfg.options = options }
}

// Parameters sets widget parameters.
func Parameters(params map[string]string) ElementOption {
	return func(cfg *elementConfig) { cfg.parameters = params }
}

// Category sets the media or link category.
func Category(id string) ElementOption {
	return func(cfg *elementConfig) { cfg.category = id }
}

// Validations sets validation rules.
func Validations(rules map[string]string) ElementOption {
	return func(cfg *elementConfig) { cfg.validations = rules }
}

// DefaultValue sets the value shown in add mode when nothing was supplied.
func DefaultValue(value string) ElementOption {
	return func(cfg *elementConfig) { cfg.defaultValue = value }
}
