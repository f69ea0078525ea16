package widgets

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sort"
	"sync"

	"github.com/goliatone/go-mform/pkg/model"
)

// ErrWidgetNotRegistered is returned when no renderer exists for a field type.
var ErrWidgetNotRegistered = errors.New("widgets: widget not registered")

// Request carries everything a link/media picker needs to render itself.
type Request struct {
	// Type is the field type being rendered (link, medialist, ...).
	Type model.FieldType
	// ID is the first identifier segment, the widget slot number.
	ID string
	// InputName is the form input name the widget must submit under.
	InputName string
	// HTMLID is the element id the label points at.
	HTMLID     string
	Value      string
	Parameters map[string]string
	Attributes map[string]string
}

// Func renders a widget for a request.
type Func func(ctx context.Context, req Request) (string, error)

// Registry maps field types to widget renderers. The zero value is empty and
// ready to use.
type Registry struct {
	mu      sync.RWMutex
	widgets map[model.FieldType]Func
}

// NewRegistry constructs a registry with the built-in picker skeletons
// registered for every widget field type.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register installs fn for typ, replacing any previous renderer.
func (r *Registry) Register(typ model.FieldType, fn Func) {
	if r == nil || fn == nil || typ == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.widgets == nil {
		r.widgets = make(map[model.FieldType]Func)
	}
	r.widgets[typ] = fn
}

// Lookup returns the renderer registered for typ.
func (r *Registry) Lookup(typ model.FieldType) (Func, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.widgets[typ]
	return fn, ok
}

// Types lists the registered field types in lexical order.
func (r *Registry) Types() []model.FieldType {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	out := make([]model.FieldType, 0, len(r.widgets))
	for typ := range r.widgets {
		out = append(out, typ)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// RenderWidget dispatches the request to the renderer registered for its
// type. Maps on the request are copied so renderers may mutate them.
func (r *Registry) RenderWidget(ctx context.Context, req Request) (string, error) {
	fn, ok := r.Lookup(req.Type)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrWidgetNotRegistered, req.Type)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	req.Parameters = maps.Clone(req.Parameters)
	req.Attributes = maps.Clone(req.Attributes)
	return fn(ctx, req)
}

func (r *Registry) registerBuiltins() {
	r.Register(model.FieldTypeLink, renderLink)
	r.Register(model.FieldTypeMedia, renderMedia)
	r.Register(model.FieldTypeLinklist, renderLinklist)
	r.Register(model.FieldTypeMedialist, renderMedialist)
	r.Register(model.FieldTypeImglist, renderImglist)
	r.Register(model.FieldTypeCustomLink, renderCustomLink)
}
