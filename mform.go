// Package mform builds CMS form markup through a chained API and renders it
// with themed templates.
//
//	form, err := mform.New(mform.WithMode(model.ModeEdit), mform.WithValues(values))
//	if err != nil {
//		return err
//	}
//	form.AddFieldsetArea("Content", func(b *builder.Builder) {
//		b.AddTextField("1").SetLabel("Title")
//	}, nil)
//	html, err := form.Show(ctx)
package mform

import (
	"context"

	"go.uber.org/zap"

	"github.com/goliatone/go-mform/pkg/builder"
	"github.com/goliatone/go-mform/pkg/model"
	"github.com/goliatone/go-mform/pkg/render"
)

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// Result aliases render.Result.
type Result = render.Result

// Option configures a Form.
type Option func(*config)

type config struct {
	builderOptions []builder.Option
	renderOptions  []render.Option
	parser         *render.Parser
}

// WithMode sets add or edit mode.
func WithMode(mode model.Mode) Option {
	return func(cfg *config) {
		cfg.builderOptions = append(cfg.builderOptions, builder.WithMode(mode))
	}
}

// WithValues sets the loaded record consulted in edit mode.
func WithValues(values builder.ValueSource) Option {
	return func(cfg *config) {
		cfg.builderOptions = append(cfg.builderOptions, builder.WithValues(values))
	}
}

// WithTheme sets the configured theme.
func WithTheme(name string) Option {
	return func(cfg *config) {
		cfg.renderOptions = append(cfg.renderOptions, render.WithDefaultTheme(name))
	}
}

// WithLogger sets the logger for both the builder and the parser.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		cfg.builderOptions = append(cfg.builderOptions, builder.WithLogger(logger))
		cfg.renderOptions = append(cfg.renderOptions, render.WithLogger(logger))
	}
}

// WithContext sets the context embedded subforms render with.
func WithContext(ctx context.Context) Option {
	return func(cfg *config) {
		cfg.builderOptions = append(cfg.builderOptions, builder.WithContext(ctx))
	}
}

// WithParser reuses an existing parser. Render options are then ignored.
func WithParser(parser *render.Parser) Option {
	return func(cfg *config) {
		cfg.parser = parser
	}
}

// WithRenderOptions forwards options to render.New.
func WithRenderOptions(options ...render.Option) Option {
	return func(cfg *config) {
		cfg.renderOptions = append(cfg.renderOptions, options...)
	}
}

// WithBuilderOptions forwards options to builder.New.
func WithBuilderOptions(options ...builder.Option) Option {
	return func(cfg *config) {
		cfg.builderOptions = append(cfg.builderOptions, options...)
	}
}

// Form is a Builder bound to the Parser that renders it. Embedded subforms
// render through the same parser.
type Form struct {
	*builder.Builder
	parser *render.Parser
}

// New constructs an empty Form.
func New(options ...Option) (*Form, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt != nil {
			opt(cfg)
		}
	}

	parser := cfg.parser
	if parser == nil {
		var err error
		parser, err = render.New(cfg.renderOptions...)
		if err != nil {
			return nil, err
		}
	}

	builderOptions := append([]builder.Option{builder.WithSubformRenderer(parser.RenderFields)}, cfg.builderOptions...)
	return &Form{
		Builder: builder.New(builderOptions...),
		parser:  parser,
	}, nil
}

// Parser returns the parser bound to the form.
func (f *Form) Parser() *render.Parser {
	return f.parser
}

// Show renders the form with the configured theme.
func (f *Form) Show(ctx context.Context) (string, error) {
	result, err := f.Render(ctx, RenderOptions{})
	if err != nil {
		return "", err
	}
	return result.HTML, nil
}

// Render renders the form with per call options.
func (f *Form) Render(ctx context.Context, opts RenderOptions) (Result, error) {
	return f.parser.Render(ctx, f.Fields(), opts)
}
