package formfile

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-mform/pkg/builder"
	"github.com/goliatone/go-mform/pkg/model"
	"github.com/goliatone/go-mform/pkg/sqloptions"
)

// ApplyOptions supplies the collaborators Apply may need.
type ApplyOptions struct {
	// Querier runs `sql` option queries. Without it such queries are skipped.
	Querier sqloptions.Querier
	Logger  *zap.Logger
}

// Apply replays the document's fields through b. Unknown types and failed
// option queries are logged and skipped.
func Apply(ctx context.Context, b *builder.Builder, doc Document, opts ApplyOptions) error {
	if b == nil {
		return errors.New("formfile: builder is required")
	}
	a := applier{ctx: ctx, opts: opts, logger: opts.Logger, source: doc.Source}
	if a.logger == nil {
		a.logger = zap.NewNop()
	}
	return a.fields(b, doc.Fields)
}

type applier struct {
	ctx    context.Context
	opts   ApplyOptions
	logger *zap.Logger
	source string
}

func (a applier) fields(b *builder.Builder, specs []FieldSpec) error {
	for _, spec := range specs {
		if err := a.ctx.Err(); err != nil {
			return err
		}
		typ, err := model.ParseFieldType(spec.Type)
		if err != nil {
			a.logger.Warn("skipping field with unknown type",
				zap.String("source", a.source),
				zap.String("type", spec.Type),
				zap.String("id", spec.ID),
			)
			continue
		}
		if err := a.field(b, typ, spec); err != nil {
			return err
		}
	}
	return nil
}

func (a applier) field(b *builder.Builder, typ model.FieldType, spec FieldSpec) error {
	switch typ {
	case model.FieldTypeFieldset:
		a.configure(b.AddFieldset(firstNonEmpty(spec.Value, spec.Label), spec.Attributes), spec)
		return a.body(b, spec, func() { b.CloseFieldset() })
	case model.FieldTypeTab:
		a.configure(b.AddElement(typ, "", builder.Value(firstNonEmpty(spec.Value, spec.Label)), builder.Attributes(spec.Attributes)), spec)
		return a.body(b, spec, func() { b.AddElement(model.FieldTypeCloseTab, "") })
	case model.FieldTypeCollapse:
		group := builder.CollapseGroup(spec.Accordion, spec.HideToggleLinks, spec.Open)
		el := b.AddElement(typ, "", builder.Value(firstNonEmpty(spec.Value, spec.Label)), builder.Attributes(spec.Attributes)).
			SetAttributes(group)
		a.configure(el, spec)
		return a.body(b, spec, func() {
			b.AddElement(model.FieldTypeCloseCollapse, "", builder.Attributes(group))
		})
	case model.FieldTypeAlert:
		class := firstNonEmpty(spec.Class, "alert-info")
		if !strings.HasPrefix(class, "alert-") {
			class = "alert-" + class
		}
		spec.Class = class
	}

	el := b.AddElement(typ, spec.ID,
		builder.Value(spec.Value),
		builder.Attributes(spec.Attributes),
		builder.Options(convertOptions(spec.Options)...),
		builder.Parameters(spec.Parameters),
		builder.Category(spec.Category),
		builder.Validations(spec.Validations),
		builder.DefaultValue(spec.Default),
	)
	if typ == model.FieldTypeMultiselect {
		el.SetMultiple()
	}
	a.configure(el, spec)

	if strings.TrimSpace(spec.SQL) != "" {
		if a.opts.Querier == nil {
			a.logger.Warn("skipping sql options without a database",
				zap.String("source", a.source),
				zap.String("id", spec.ID),
			)
		} else {
			el.SetSQLOptions(a.ctx, a.opts.Querier, spec.SQL)
		}
	}
	return nil
}

// body applies nested fields followed by the closer. Openers declared without
// a body stay open.
func (a applier) body(b *builder.Builder, spec FieldSpec, closer func()) error {
	if spec.Fields == nil {
		return nil
	}
	if err := a.fields(b, spec.Fields); err != nil {
		return err
	}
	closer()
	return nil
}

func (a applier) configure(el *builder.Element, spec FieldSpec) {
	if spec.Label != "" {
		el.SetLabel(spec.Label)
	}
	if spec.Class != "" {
		el.SetAttribute("class", spec.Class)
	}
	if spec.Placeholder != "" {
		el.SetPlaceholder(spec.Placeholder)
	}
	if spec.Size != "" {
		el.SetSize(spec.Size)
	}
	if spec.Multiple {
		el.SetMultiple()
	}
	if spec.Full {
		el.SetFull()
	}
	if spec.PullRight {
		el.PullRight()
	}
	if len(spec.Toggle) > 0 {
		el.SetToggleOptions(spec.Toggle)
	}
	if len(spec.Disabled) > 0 {
		el.SetDisableOptions(spec.Disabled...)
	}
	if spec.Tooltip != nil {
		el.SetTooltipInfo(spec.Tooltip.Text, spec.Tooltip.Icon)
	}
	if spec.Info != nil {
		el.SetCollapseInfo(spec.Info.Text, spec.Info.Icon)
	}
	if spec.Icon != "" {
		el.SetTabIcon(spec.Icon)
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
