package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-mform/pkg/model"
	"github.com/goliatone/go-mform/pkg/render/template"
	"github.com/goliatone/go-mform/pkg/render/template/gotemplate"
	"github.com/goliatone/go-mform/pkg/themes"
	"github.com/goliatone/go-mform/pkg/widgets"
)

// Parser renders field descriptors through theme templates. A Parser holds
// no per-render state and is safe for concurrent use once constructed.
type Parser struct {
	templates template.TemplateRenderer
	resolver  TemplateResolver
	assets    ThemeAssets
	widgets   WidgetRenderer
	theme     string
	inputName string
	idPrefix  string
	groupID   func() string
	logger    *zap.Logger
}

// New constructs a Parser. Collaborators not supplied through options default
// to the embedded theme bundle, a pongo2 engine over it and the built-in
// widget registry.
func New(options ...Option) (*Parser, error) {
	p := &Parser{
		theme:     themes.DefaultThemeName,
		inputName: defaultInputName,
		idPrefix:  defaultIDPrefix,
		groupID:   uuid.NewString,
		logger:    zap.NewNop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(p)
		}
	}

	if p.templates == nil {
		engine, err := gotemplate.New(gotemplate.WithFS(themes.TemplatesFS()))
		if err != nil {
			return nil, fmt.Errorf("render: default template engine: %w", err)
		}
		p.templates = engine
	}
	if p.resolver == nil || p.assets == nil {
		provider := themes.NewProvider()
		if p.resolver == nil {
			p.resolver = provider
		}
		if p.assets == nil {
			p.assets = provider
		}
	}
	if p.widgets == nil {
		p.widgets = widgets.NewRegistry()
	}
	return p, nil
}

// Theme returns the configured theme name.
func (p *Parser) Theme() string {
	return p.theme
}

type renderState struct {
	ctx          context.Context
	theme        string
	fieldsetOpen bool
	out          strings.Builder
	skipped      []error
}

// Render walks fields in order and returns the concatenated markup. Fields
// with an unknown type are logged and reported in Result.Skipped. Template
// and widget failures abort the render and are returned as *FieldError.
func (p *Parser) Render(ctx context.Context, fields []model.Field, opts RenderOptions) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	st := &renderState{ctx: ctx, theme: p.theme}

	var result Result
	if name := strings.TrimSpace(opts.Theme); name != "" && !strings.EqualFold(name, p.theme) {
		st.theme = name
		stylesheets, err := p.bootTheme(name)
		if err != nil {
			return Result{}, err
		}
		result.Stylesheets = stylesheets
	}

	for _, field := range fields {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if err := p.renderField(st, field); err != nil {
			return Result{}, &FieldError{Position: field.Position, Type: field.Type, Err: err}
		}
	}
	if st.fieldsetOpen {
		if err := p.closeFieldset(st); err != nil {
			return Result{}, fmt.Errorf("render: close trailing fieldset: %w", err)
		}
	}

	if opts.Debug != nil {
		if err := dumpFields(opts.Debug, fields); err != nil {
			return Result{}, err
		}
	}

	result.HTML = st.out.String()
	result.Skipped = st.skipped
	return result, nil
}

// RenderModel renders a FormModel with the given options.
func (p *Parser) RenderModel(ctx context.Context, form model.FormModel, opts RenderOptions) (Result, error) {
	return p.Render(ctx, form.Fields, opts)
}

// RenderFields renders fields with the configured theme and returns only the
// markup. Its signature matches builder.SubformRenderer.
func (p *Parser) RenderFields(ctx context.Context, fields []model.Field) (string, error) {
	result, err := p.Render(ctx, fields, RenderOptions{})
	if err != nil {
		return "", err
	}
	return result.HTML, nil
}

func (p *Parser) bootTheme(name string) ([]string, error) {
	if p.assets == nil {
		return nil, nil
	}
	if err := p.assets.EnsureBooted(name); err != nil {
		return nil, fmt.Errorf("render: boot theme %q: %w", name, err)
	}
	stylesheets, err := p.assets.CSSAssets(name)
	if err != nil {
		return nil, fmt.Errorf("render: theme %q stylesheets: %w", name, err)
	}
	p.logger.Debug("theme booted", zap.String("theme", name), zap.Int("stylesheets", len(stylesheets)))
	return stylesheets, nil
}

func (p *Parser) renderField(st *renderState, field model.Field) error {
	switch field.Type {
	case model.FieldTypeFieldset:
		return p.openFieldset(st, field)
	case model.FieldTypeCloseFieldset:
		if st.fieldsetOpen {
			return p.closeFieldset(st)
		}
		return nil
	case model.FieldTypeTab:
		return p.openTab(st, field)
	case model.FieldTypeCloseTab:
		return p.emit(st, "tab-close", nil)
	case model.FieldTypeCollapse:
		return p.openCollapse(st, field)
	case model.FieldTypeCloseCollapse:
		return p.emit(st, "collapse-close", nil)
	case model.FieldTypeHTML, model.FieldTypeHeadline, model.FieldTypeDescription, model.FieldTypeAlert:
		return p.lineElement(st, field)
	case model.FieldTypeText, model.FieldTypeHidden, model.FieldTypeTextReadonly:
		return p.inputElement(st, field)
	case model.FieldTypeTextarea, model.FieldTypeTextareaReadonly, model.FieldTypeMarkitup:
		return p.areaElement(st, field)
	case model.FieldTypeSelect, model.FieldTypeMultiselect:
		return p.optionsElement(st, field)
	case model.FieldTypeCheckbox, model.FieldTypeMulticheckbox:
		return p.checkboxElement(st, field)
	case model.FieldTypeRadio:
		return p.radioElement(st, field)
	case model.FieldTypeLink, model.FieldTypeLinklist, model.FieldTypeMedia,
		model.FieldTypeMedialist, model.FieldTypeImglist, model.FieldTypeCustomLink:
		return p.widgetElement(st, field)
	default:
		skipped := &model.UnknownFieldTypeError{Type: string(field.Type), Position: field.Position}
		p.logger.Warn("skipping field with unknown type",
			zap.String("type", string(field.Type)),
			zap.Int("position", field.Position),
			zap.String("id", field.ID),
		)
		st.skipped = append(st.skipped, skipped)
		return nil
	}
}

// fragment renders the theme template registered under name.
func (p *Parser) fragment(st *renderState, name string, data map[string]any) (string, error) {
	path := p.resolver.Resolve(st.theme, name)
	out, err := p.templates.RenderTemplate(path, data)
	if err != nil {
		return "", err
	}
	return out, nil
}

// emit renders a fragment and appends it to the output.
func (p *Parser) emit(st *renderState, name string, data map[string]any) error {
	out, err := p.fragment(st, name, data)
	if err != nil {
		return err
	}
	st.out.WriteString(out)
	return nil
}
