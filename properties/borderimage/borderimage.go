// Package borderimage is a minimal stand-in for the border-image
// PropertyHandler the border handler delegates to, per spec.md §1 ("the
// sibling handlers for border-image and border-radius ... the border
// handler delegates to them via a PropertyHandler interface"). It exists
// so the delegation path and the "border resets border-image" rule
// (spec.md S5/S7) are exercisable end to end; it deliberately does not
// implement border-image's own shorthand-collapsing logic, which is out
// of this module's scope.
package borderimage

import (
	"github.com/tawesoft/cssbox/context"
	"github.com/tawesoft/cssbox/properties"
)

// family lists the border-image property ids this handler accepts, in
// the canonical order Finalize emits remaining longhands.
var family = []properties.PropertyId{
	properties.BorderImageSource,
	properties.BorderImageSlice,
	properties.BorderImageWidth,
	properties.BorderImageOutset,
	properties.BorderImageRepeat,
}

func owns(id properties.PropertyId) bool {
	if id == properties.BorderImage {
		return true
	}
	for _, f := range family {
		if f == id {
			return true
		}
	}
	return false
}

// Handler accumulates border-image declarations until Finalize or Reset,
// exactly as border's own per-side state does, but without the
// shorthand/longhand collapsing the real border-image property needs
// (out of scope here).
type Handler struct {
	shorthand *properties.Property
	fields    map[properties.PropertyId]properties.Property
}

// New returns a fresh, empty Handler.
func New() *Handler {
	return &Handler{}
}

// HandleProperty accepts a border-image family declaration, or reports
// false for anything else so the caller can route elsewhere.
func (h *Handler) HandleProperty(p properties.Property, out *properties.DeclarationList, ctx *context.PropertyHandlerContext) bool {
	if !owns(p.ID) {
		return false
	}
	if p.ID == properties.BorderImage {
		v := p
		h.shorthand = &v
		h.fields = nil
		return true
	}
	if h.fields == nil {
		h.fields = make(map[properties.PropertyId]properties.Property, len(family))
	}
	h.fields[p.ID] = p
	h.shorthand = nil
	return true
}

// WillFlush reports whether accepting p would require the border handler
// to flush its own pending state first. This handler never needs that:
// it only ever buffers, never collapses shorthands, so there is nothing
// an incoming declaration could invalidate.
func (h *Handler) WillFlush(p properties.Property) bool {
	return false
}

// Reset discards any pending border-image state without emitting it —
// used by the border handler when a `border` shorthand declaration
// arrives, since the CSS `border` shorthand resets `border-image`.
func (h *Handler) Reset() {
	h.shorthand = nil
	h.fields = nil
}

// Finalize emits whatever border-image state is pending: the shorthand
// if one was set since the last reset, else the individual longhands
// that were set, in family order.
func (h *Handler) Finalize(out *properties.DeclarationList, ctx *context.PropertyHandlerContext) {
	if h.shorthand != nil {
		out.Push(*h.shorthand)
		h.shorthand = nil
		return
	}
	for _, id := range family {
		if p, ok := h.fields[id]; ok {
			out.Push(p)
		}
	}
	h.fields = nil
}
