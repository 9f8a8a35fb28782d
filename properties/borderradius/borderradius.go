// Package borderradius is a minimal stand-in for the border-radius
// PropertyHandler the border handler delegates to, per spec.md §1.
// See the sibling [github.com/tawesoft/cssbox/properties/borderimage]
// package doc for the rationale: this exercises the delegation path
// without implementing border-radius's own shorthand-collapsing logic.
package borderradius

import (
	"github.com/tawesoft/cssbox/context"
	"github.com/tawesoft/cssbox/properties"
)

var family = []properties.PropertyId{
	properties.BorderTopLeftRadius,
	properties.BorderTopRightRadius,
	properties.BorderBottomRightRadius,
	properties.BorderBottomLeftRadius,
}

func owns(id properties.PropertyId) bool {
	if id == properties.BorderRadius {
		return true
	}
	for _, f := range family {
		if f == id {
			return true
		}
	}
	return false
}

// Handler accumulates border-radius declarations until Finalize or
// Reset.
type Handler struct {
	shorthand *properties.Property
	fields    map[properties.PropertyId]properties.Property
}

// New returns a fresh, empty Handler.
func New() *Handler {
	return &Handler{}
}

// HandleProperty accepts a border-radius family declaration, or reports
// false for anything else.
func (h *Handler) HandleProperty(p properties.Property, out *properties.DeclarationList, ctx *context.PropertyHandlerContext) bool {
	if !owns(p.ID) {
		return false
	}
	if p.ID == properties.BorderRadius {
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

// WillFlush always reports false: this handler only ever buffers, never
// collapses shorthands, so nothing an incoming declaration could
// invalidate.
func (h *Handler) WillFlush(p properties.Property) bool {
	return false
}

// Reset discards pending border-radius state without emitting it.
func (h *Handler) Reset() {
	h.shorthand = nil
	h.fields = nil
}

// Finalize emits whatever border-radius state is pending.
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
