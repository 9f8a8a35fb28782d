// Package border implements the CSS border-family PropertyHandler: the
// stateful transformer described in spec.md §4.3 and §4.4 that coalesces
// a stream of border-related declarations into a minimal, cascade-
// preserving set of output declarations, expanding logical properties to
// physical pairs when a target browser lacks logical-border support and
// integrating the color package's fallback protocol for every color it
// emits.
package border

import (
	"github.com/tawesoft/cssbox/compat"
	"github.com/tawesoft/cssbox/context"
	"github.com/tawesoft/cssbox/css/color"
	"github.com/tawesoft/cssbox/properties"
	"github.com/tawesoft/cssbox/properties/borderimage"
	"github.com/tawesoft/cssbox/properties/borderradius"
)

// Handler is the border PropertyHandler: the spec's BorderHandlerState
// (eight SideStates, the Physical/Logical/Uninit category tag, the
// has_any flag) plus the embedded border-image and border-radius
// handlers it delegates to.
type Handler struct {
	targets *compat.Browsers

	top, right, bottom, left                   SideState
	blockStart, blockEnd, inlineStart, inlineEnd SideState

	cat    category
	hasAny bool

	BorderImage  *borderimage.Handler
	BorderRadius *borderradius.Handler
}

// New returns a fresh Handler for one declaration block. targets may be
// nil, meaning no specific browser targets (every feature is then
// vacuously supported, and no fallbacks are generated).
func New(targets *compat.Browsers) *Handler {
	return &Handler{
		targets:      targets,
		BorderImage:  borderimage.New(),
		BorderRadius: borderradius.New(),
	}
}

// sideState returns the pointer to s's SideState within h.
func (h *Handler) sideState(s Side) *SideState {
	switch s {
	case Top:
		return &h.top
	case Right:
		return &h.right
	case Bottom:
		return &h.bottom
	case Left:
		return &h.left
	case BlockStart:
		return &h.blockStart
	case BlockEnd:
		return &h.blockEnd
	case InlineStart:
		return &h.inlineStart
	case InlineEnd:
		return &h.inlineEnd
	default:
		panic("border: unknown side")
	}
}

// maybeFlush flushes pending state before accepting a declaration whose
// category differs from the one currently being collected, preserving
// the relative textual order of logical vs physical declarations in the
// output (spec.md §3, BorderHandlerState lifecycle).
func (h *Handler) maybeFlush(cat category, out *properties.DeclarationList, ctx *context.PropertyHandlerContext) {
	if cat != h.cat {
		h.flush(out, ctx)
	}
}

func (h *Handler) setWidth(s Side, w Width, out *properties.DeclarationList, ctx *context.PropertyHandlerContext) {
	h.maybeFlush(s.Category(), out, ctx)
	wv := w
	h.sideState(s).Width = &wv
	h.cat = s.Category()
	h.hasAny = true
}

func (h *Handler) setStyle(s Side, st LineStyle, out *properties.DeclarationList, ctx *context.PropertyHandlerContext) {
	h.maybeFlush(s.Category(), out, ctx)
	sv := st
	h.sideState(s).Style = &sv
	h.cat = s.Category()
	h.hasAny = true
}

func (h *Handler) setColor(s Side, c color.Color, out *properties.DeclarationList, ctx *context.PropertyHandlerContext) {
	h.maybeFlush(s.Category(), out, ctx)
	cv := c
	h.sideState(s).Color = &cv
	h.cat = s.Category()
	h.hasAny = true
}

func (h *Handler) setTriple(s Side, t Triple, out *properties.DeclarationList, ctx *context.PropertyHandlerContext) {
	h.maybeFlush(s.Category(), out, ctx)
	h.sideState(s).SetBorder(t)
	h.cat = s.Category()
	h.hasAny = true
}

// HandleProperty is the PropertyHandler contract: it returns true iff p
// belongs to the border, border-image or border-radius families,
// mutating internal state (and possibly flushing and emitting into out)
// as it goes.
func (h *Handler) HandleProperty(p properties.Property, out *properties.DeclarationList, ctx *context.PropertyHandlerContext) bool {
	switch p.ID {
	case properties.BorderTopColor:
		h.setColor(Top, p.Value.(color.Color), out, ctx)
	case properties.BorderBottomColor:
		h.setColor(Bottom, p.Value.(color.Color), out, ctx)
	case properties.BorderLeftColor:
		h.setColor(Left, p.Value.(color.Color), out, ctx)
	case properties.BorderRightColor:
		h.setColor(Right, p.Value.(color.Color), out, ctx)
	case properties.BorderBlockStartColor:
		h.setColor(BlockStart, p.Value.(color.Color), out, ctx)
	case properties.BorderBlockEndColor:
		h.setColor(BlockEnd, p.Value.(color.Color), out, ctx)
	case properties.BorderBlockColor:
		v := p.Value.(ColorPair)
		h.setColor(BlockStart, v.Start, out, ctx)
		h.setColor(BlockEnd, v.End, out, ctx)
	case properties.BorderInlineStartColor:
		h.setColor(InlineStart, p.Value.(color.Color), out, ctx)
	case properties.BorderInlineEndColor:
		h.setColor(InlineEnd, p.Value.(color.Color), out, ctx)
	case properties.BorderInlineColor:
		v := p.Value.(ColorPair)
		h.setColor(InlineStart, v.Start, out, ctx)
		h.setColor(InlineEnd, v.End, out, ctx)

	case properties.BorderTopWidth:
		h.setWidth(Top, p.Value.(Width), out, ctx)
	case properties.BorderBottomWidth:
		h.setWidth(Bottom, p.Value.(Width), out, ctx)
	case properties.BorderLeftWidth:
		h.setWidth(Left, p.Value.(Width), out, ctx)
	case properties.BorderRightWidth:
		h.setWidth(Right, p.Value.(Width), out, ctx)
	case properties.BorderBlockStartWidth:
		h.setWidth(BlockStart, p.Value.(Width), out, ctx)
	case properties.BorderBlockEndWidth:
		h.setWidth(BlockEnd, p.Value.(Width), out, ctx)
	case properties.BorderBlockWidth:
		v := p.Value.(WidthPair)
		h.setWidth(BlockStart, v.Start, out, ctx)
		h.setWidth(BlockEnd, v.End, out, ctx)
	case properties.BorderInlineStartWidth:
		h.setWidth(InlineStart, p.Value.(Width), out, ctx)
	case properties.BorderInlineEndWidth:
		h.setWidth(InlineEnd, p.Value.(Width), out, ctx)
	case properties.BorderInlineWidth:
		v := p.Value.(WidthPair)
		h.setWidth(InlineStart, v.Start, out, ctx)
		h.setWidth(InlineEnd, v.End, out, ctx)

	case properties.BorderTopStyle:
		h.setStyle(Top, p.Value.(LineStyle), out, ctx)
	case properties.BorderBottomStyle:
		h.setStyle(Bottom, p.Value.(LineStyle), out, ctx)
	case properties.BorderLeftStyle:
		h.setStyle(Left, p.Value.(LineStyle), out, ctx)
	case properties.BorderRightStyle:
		h.setStyle(Right, p.Value.(LineStyle), out, ctx)
	case properties.BorderBlockStartStyle:
		h.setStyle(BlockStart, p.Value.(LineStyle), out, ctx)
	case properties.BorderBlockEndStyle:
		h.setStyle(BlockEnd, p.Value.(LineStyle), out, ctx)
	case properties.BorderBlockStyle:
		v := p.Value.(StylePair)
		h.setStyle(BlockStart, v.Start, out, ctx)
		h.setStyle(BlockEnd, v.End, out, ctx)
	case properties.BorderInlineStartStyle:
		h.setStyle(InlineStart, p.Value.(LineStyle), out, ctx)
	case properties.BorderInlineEndStyle:
		h.setStyle(InlineEnd, p.Value.(LineStyle), out, ctx)
	case properties.BorderInlineStyle:
		v := p.Value.(StylePair)
		h.setStyle(InlineStart, v.Start, out, ctx)
		h.setStyle(InlineEnd, v.End, out, ctx)

	case properties.BorderTop:
		h.setTriple(Top, p.Value.(Triple), out, ctx)
	case properties.BorderBottom:
		h.setTriple(Bottom, p.Value.(Triple), out, ctx)
	case properties.BorderLeft:
		h.setTriple(Left, p.Value.(Triple), out, ctx)
	case properties.BorderRight:
		h.setTriple(Right, p.Value.(Triple), out, ctx)
	case properties.BorderBlockStart:
		h.setTriple(BlockStart, p.Value.(Triple), out, ctx)
	case properties.BorderBlockEnd:
		h.setTriple(BlockEnd, p.Value.(Triple), out, ctx)
	case properties.BorderInlineStart:
		h.setTriple(InlineStart, p.Value.(Triple), out, ctx)
	case properties.BorderInlineEnd:
		h.setTriple(InlineEnd, p.Value.(Triple), out, ctx)
	case properties.BorderBlock:
		v := p.Value.(Triple)
		h.setTriple(BlockStart, v, out, ctx)
		h.setTriple(BlockEnd, v, out, ctx)
	case properties.BorderInline:
		v := p.Value.(Triple)
		h.setTriple(InlineStart, v, out, ctx)
		h.setTriple(InlineEnd, v, out, ctx)

	case properties.BorderWidth:
		v := p.Value.(WidthRect)
		h.top.Width, h.right.Width, h.bottom.Width, h.left.Width = &v.Top, &v.Right, &v.Bottom, &v.Left
		h.blockStart.Width, h.blockEnd.Width, h.inlineStart.Width, h.inlineEnd.Width = nil, nil, nil, nil
		h.hasAny = true
	case properties.BorderStyle:
		v := p.Value.(StyleRect)
		h.top.Style, h.right.Style, h.bottom.Style, h.left.Style = &v.Top, &v.Right, &v.Bottom, &v.Left
		h.blockStart.Style, h.blockEnd.Style, h.inlineStart.Style, h.inlineEnd.Style = nil, nil, nil, nil
		h.hasAny = true
	case properties.BorderColor:
		v := p.Value.(ColorRect)
		h.top.Color, h.right.Color, h.bottom.Color, h.left.Color = &v.Top, &v.Right, &v.Bottom, &v.Left
		h.blockStart.Color, h.blockEnd.Color, h.inlineStart.Color, h.inlineEnd.Color = nil, nil, nil, nil
		h.hasAny = true

	case properties.Border:
		v := p.Value.(Triple)
		h.top.SetBorder(v)
		h.bottom.SetBorder(v)
		h.left.SetBorder(v)
		h.right.SetBorder(v)
		h.blockStart.Reset()
		h.blockEnd.Reset()
		h.inlineStart.Reset()
		h.inlineEnd.Reset()
		// Setting the `border` shorthand resets `border-image`.
		h.BorderImage.Reset()
		h.hasAny = true

	case properties.Unparsed:
		v := p.Value.(*properties.Unparsed)
		if isBorderProperty(v.ID) {
			h.flush(out, ctx)
			h.flushUnparsed(v, out, ctx)
			return true
		}
		if h.BorderImage.WillFlush(p) {
			h.flush(out, ctx)
		}
		return h.BorderImage.HandleProperty(p, out, ctx) || h.BorderRadius.HandleProperty(p, out, ctx)

	default:
		if h.BorderImage.WillFlush(p) {
			h.flush(out, ctx)
		}
		return h.BorderImage.HandleProperty(p, out, ctx) || h.BorderRadius.HandleProperty(p, out, ctx)
	}

	return true
}

// Finalize flushes any pending side state and drains the embedded
// border-image and border-radius handlers. Failing to call Finalize
// before discarding a Handler silently loses its accumulated
// declarations (spec.md §5).
func (h *Handler) Finalize(out *properties.DeclarationList, ctx *context.PropertyHandlerContext) {
	h.flush(out, ctx)
	h.BorderImage.Finalize(out, ctx)
	h.BorderRadius.Finalize(out, ctx)
}

// isBorderProperty reports whether id belongs to the border family this
// handler owns (mirrors the source's free-standing is_border_property).
func isBorderProperty(id properties.PropertyId) bool {
	switch id {
	case properties.BorderTopColor, properties.BorderBottomColor, properties.BorderLeftColor, properties.BorderRightColor,
		properties.BorderBlockStartColor, properties.BorderBlockEndColor, properties.BorderBlockColor,
		properties.BorderInlineStartColor, properties.BorderInlineEndColor, properties.BorderInlineColor,
		properties.BorderTopWidth, properties.BorderBottomWidth, properties.BorderLeftWidth, properties.BorderRightWidth,
		properties.BorderBlockStartWidth, properties.BorderBlockEndWidth, properties.BorderBlockWidth,
		properties.BorderInlineStartWidth, properties.BorderInlineEndWidth, properties.BorderInlineWidth,
		properties.BorderTopStyle, properties.BorderBottomStyle, properties.BorderLeftStyle, properties.BorderRightStyle,
		properties.BorderBlockStartStyle, properties.BorderBlockEndStyle, properties.BorderBlockStyle,
		properties.BorderInlineStartStyle, properties.BorderInlineEndStyle, properties.BorderInlineStyle,
		properties.BorderTop, properties.BorderBottom, properties.BorderLeft, properties.BorderRight,
		properties.BorderBlockStart, properties.BorderBlockEnd, properties.BorderInlineStart, properties.BorderInlineEnd,
		properties.BorderBlock, properties.BorderInline,
		properties.BorderWidth, properties.BorderStyle, properties.BorderColor, properties.Border:
		return true
	default:
		return false
	}
}
