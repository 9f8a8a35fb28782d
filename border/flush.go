package border

import (
	"github.com/tawesoft/cssbox/compat"
	"github.com/tawesoft/cssbox/context"
	"github.com/tawesoft/cssbox/css/color"
	"github.com/tawesoft/cssbox/properties"
)

// flush drains pending side state into out, once for the physical
// quartet and once for the logical quartet, and resets all eight
// SideStates. It is a no-op if nothing has been set since the last
// flush (spec.md §4.4).
func (h *Handler) flush(out *properties.DeclarationList, ctx *context.PropertyHandlerContext) {
	if !h.hasAny {
		return
	}
	h.hasAny = false

	h.flushCategory(physicalQuartet, out, ctx)
	h.flushCategory(logicalQuartet, out, ctx)

	h.top.Reset()
	h.bottom.Reset()
	h.left.Reset()
	h.right.Reset()
	h.blockStart.Reset()
	h.blockEnd.Reset()
	h.inlineStart.Reset()
	h.inlineEnd.Reset()
	h.cat = catUninit
}

// quartet names the four sides one flushCategory pass operates over,
// plus whether that pass is the logical one (physical sides are never
// lowered further; logical sides may be, depending on target support).
type quartet struct {
	blockStart, blockEnd, inlineStart, inlineEnd Side
	isLogical                                    bool
}

var (
	physicalQuartet = quartet{Top, Bottom, Left, Right, false}
	logicalQuartet  = quartet{BlockStart, BlockEnd, InlineStart, InlineEnd, true}
)

func (h *Handler) state(s Side) *SideState { return h.sideState(s) }

// flushCategory is the source's flush_category! macro, transcribed as
// plain Go: it decides, for one quartet of sides, how to collapse their
// accumulated SideStates into the smallest equivalent set of
// declarations.
func (h *Handler) flushCategory(q quartet, out *properties.DeclarationList, ctx *context.PropertyHandlerContext) {
	bs, be, is, ie := h.state(q.blockStart), h.state(q.blockEnd), h.state(q.inlineStart), h.state(q.inlineEnd)
	logicalSupported := ctx.IsSupported(compat.LogicalBorders)
	logicalShorthandSupported := ctx.IsSupported(compat.LogicalBorderShorthand)

	if bs.IsValid() && be.IsValid() && is.IsValid() && ie.IsValid() {
		h.flushAllValid(q, bs, be, is, ie, logicalSupported, logicalShorthandSupported, out, ctx)
		return
	}

	// Branch 2: not every side is fully specified. Collapse whatever
	// four-side sub-property shorthands we can, then emit each side
	// (or axis pair) on its own.
	h.collapseRectShorthand(properties.BorderStyle, styleKey, bs, be, is, ie, q.isLogical, out, ctx)
	h.collapseRectShorthand(properties.BorderWidth, widthKey, bs, be, is, ie, q.isLogical, out, ctx)
	h.collapseRectShorthand(properties.BorderColor, colorKey, bs, be, is, ie, q.isLogical, out, ctx)

	emitSide := func(side Side, s *SideState) {
		ids := sideTable[side]
		if s.IsValid() {
			h.emitTriple(side, s.ToBorder(), logicalSupported, out, ctx)
			return
		}
		if s.Style != nil {
			h.emitStyle(side, *s.Style, logicalSupported, ids, out)
		}
		if s.Width != nil {
			h.emitWidth(side, *s.Width, logicalSupported, ids, out)
		}
		if s.Color != nil {
			h.emitColor(side, *s.Color, logicalSupported, ids, out, ctx)
		}
	}

	if q.isLogical && bs.Equal(*be) && bs.IsValid() {
		switch {
		case !logicalSupported:
			h.emitTriple(Top, bs.ToBorder(), logicalSupported, out, ctx)
			h.emitTriple(Bottom, bs.ToBorder(), logicalSupported, out, ctx)
		case logicalShorthandSupported:
			h.pushTripleFallbacks(properties.BorderBlock, bs.ToBorder(), out)
		default:
			h.emitTriple(BlockStart, bs.ToBorder(), logicalSupported, out, ctx)
			h.emitTriple(BlockEnd, bs.ToBorder(), logicalSupported, out, ctx)
		}
	} else {
		if q.isLogical && logicalShorthandSupported && !bs.IsValid() && !be.IsValid() {
			h.collapsePairShorthand(properties.BorderBlockStyle, styleKey, bs, be, out, ctx)
			h.collapsePairShorthand(properties.BorderBlockWidth, widthKey, bs, be, out, ctx)
			h.collapsePairShorthand(properties.BorderBlockColor, colorKey, bs, be, out, ctx)
		}
		emitSide(q.blockStart, bs)
		emitSide(q.blockEnd, be)
	}

	if q.isLogical && is.Equal(*ie) && is.IsValid() {
		switch {
		case !logicalSupported:
			h.emitTriple(Left, is.ToBorder(), logicalSupported, out, ctx)
			h.emitTriple(Right, is.ToBorder(), logicalSupported, out, ctx)
		case logicalShorthandSupported:
			h.pushTripleFallbacks(properties.BorderInline, is.ToBorder(), out)
		default:
			h.emitTriple(InlineStart, is.ToBorder(), logicalSupported, out, ctx)
			h.emitTriple(InlineEnd, is.ToBorder(), logicalSupported, out, ctx)
		}
	} else {
		if q.isLogical && !is.IsValid() && !ie.IsValid() {
			if logicalShorthandSupported {
				h.collapsePairShorthand(properties.BorderInlineStyle, styleKey, is, ie, out, ctx)
				h.collapsePairShorthand(properties.BorderInlineWidth, widthKey, is, ie, out, ctx)
				h.collapsePairShorthand(properties.BorderInlineColor, colorKey, is, ie, out, ctx)
			} else {
				h.inlinePhysicalCollapse(styleKey, is, ie, out, ctx)
				h.inlinePhysicalCollapse(widthKey, is, ie, out, ctx)
				h.inlinePhysicalCollapse(colorKey, is, ie, out, ctx)
			}
		}
		emitSide(q.inlineStart, is)
		emitSide(q.inlineEnd, ie)
	}
}

// subKey names which of SideState's three sub-properties a generic
// helper is operating on, replacing the source's per-field macro
// parameterization ($key: ident).
type subKey uint8

const (
	widthKey subKey = iota
	styleKey
	colorKey
)

// inlinePhysicalCollapse is the source's inline_prop! macro: when a
// target does not support the logical shorthand, and both inline sides carry the same value for one sub-property, that
// value converts directly to the left/right physical longhands instead
// of being emitted twice under direction-selector guards.
func (h *Handler) inlinePhysicalCollapse(key subKey, is, ie *SideState, out *properties.DeclarationList, ctx *context.PropertyHandlerContext) {
	switch key {
	case styleKey:
		if is.Style != nil && styleEqual(is.Style, ie.Style) {
			v := *is.Style
			h.emitStyle(Left, v, false, sideTable[Left], out)
			h.emitStyle(Right, v, false, sideTable[Right], out)
			is.Style, ie.Style = nil, nil
		}
	case widthKey:
		if is.Width != nil && widthEqual(is.Width, ie.Width) {
			v := *is.Width
			h.emitWidth(Left, v, false, sideTable[Left], out)
			h.emitWidth(Right, v, false, sideTable[Right], out)
			is.Width, ie.Width = nil, nil
		}
	case colorKey:
		if is.Color != nil && colorEqual(is.Color, ie.Color) {
			v := *is.Color
			h.emitColor(Left, v, false, sideTable[Left], out, ctx)
			h.emitColor(Right, v, false, sideTable[Right], out, ctx)
			is.Color, ie.Color = nil, nil
		}
	}
}

// collapseRectShorthand is the source's shorthand! macro: if a
// quartet's four sides (bs/be/is/ie, in block-start/block-end/
// inline-start/inline-end order) have all set the same sub-property,
// emit it as a four-side rect (top=bs, right=ie, bottom=be, left=is)
// and clear the per-side fields. For the logical quartet this also
// requires all four sides to carry an equal value — a border-width
// rect is only a safe stand-in for four logical sides when the result
// would be identical regardless of writing direction.
func (h *Handler) collapseRectShorthand(rectID properties.PropertyId, key subKey, bs, be, is, ie *SideState, isLogical bool, out *properties.DeclarationList, ctx *context.PropertyHandlerContext) {
	var hasAll bool
	switch key {
	case widthKey:
		hasAll = bs.Width != nil && be.Width != nil && is.Width != nil && ie.Width != nil
	case styleKey:
		hasAll = bs.Style != nil && be.Style != nil && is.Style != nil && ie.Style != nil
	case colorKey:
		hasAll = bs.Color != nil && be.Color != nil && is.Color != nil && ie.Color != nil
	}
	if !hasAll {
		return
	}
	if isLogical {
		var eq bool
		switch key {
		case widthKey:
			eq = widthEqual(bs.Width, be.Width) && widthEqual(be.Width, is.Width) && widthEqual(is.Width, ie.Width)
		case styleKey:
			eq = styleEqual(bs.Style, be.Style) && styleEqual(be.Style, is.Style) && styleEqual(is.Style, ie.Style)
		case colorKey:
			eq = colorEqual(bs.Color, be.Color) && colorEqual(be.Color, is.Color) && colorEqual(is.Color, ie.Color)
		}
		if !eq {
			return
		}
	}

	switch key {
	case widthKey:
		rect := WidthRect{Top: *bs.Width, Right: *ie.Width, Bottom: *be.Width, Left: *is.Width}
		out.Push(properties.Property{ID: rectID, Value: rect})
		bs.Width, be.Width, is.Width, ie.Width = nil, nil, nil, nil
	case styleKey:
		rect := StyleRect{Top: *bs.Style, Right: *ie.Style, Bottom: *be.Style, Left: *is.Style}
		out.Push(properties.Property{ID: rectID, Value: rect})
		bs.Style, be.Style, is.Style, ie.Style = nil, nil, nil, nil
	case colorKey:
		rect := ColorRect{Top: *bs.Color, Right: *ie.Color, Bottom: *be.Color, Left: *is.Color}
		h.pushColorRectFallbacks(rectID, rect, out)
		bs.Color, be.Color, is.Color, ie.Color = nil, nil, nil, nil
	}
}

// collapsePairShorthand is the source's logical_shorthand! macro: if
// both ends of a logical axis have set the same sub-property, emit the
// axis pair shorthand and clear the per-side fields.
func (h *Handler) collapsePairShorthand(pairID properties.PropertyId, key subKey, start, end *SideState, out *properties.DeclarationList, ctx *context.PropertyHandlerContext) {
	switch key {
	case widthKey:
		if start.Width == nil || end.Width == nil {
			return
		}
		out.Push(properties.Property{ID: pairID, Value: WidthPair{Start: *start.Width, End: *end.Width}})
		start.Width, end.Width = nil, nil
	case styleKey:
		if start.Style == nil || end.Style == nil {
			return
		}
		out.Push(properties.Property{ID: pairID, Value: StylePair{Start: *start.Style, End: *end.Style}})
		start.Style, end.Style = nil, nil
	case colorKey:
		if start.Color == nil || end.Color == nil {
			return
		}
		pair := ColorPair{Start: *start.Color, End: *end.Color}
		h.pushColorPairFallbacks(pairID, pair, out)
		start.Color, end.Color = nil, nil
	}
}

// flushAllValid is branch 1 of flush_category!: every side in the
// quartet has a complete width/style/color triple. Find the most
// compact equivalent representation, from "all four sides identical"
// down to "emit every side's full triple".
func (h *Handler) flushAllValid(q quartet, bs, be, is, ie *SideState, logicalSupported, logicalShorthandSupported bool, out *properties.DeclarationList, ctx *context.PropertyHandlerContext) {
	topEqBottom := bs.Equal(*be)
	leftEqRight := is.Equal(*ie)
	topEqLeft := bs.Equal(*is)
	topEqRight := bs.Equal(*ie)
	bottomEqLeft := be.Equal(*is)
	bottomEqRight := be.Equal(*ie)

	ids := func(s Side) sideIDs { return sideTable[s] }

	switch {
	case topEqBottom && topEqLeft && topEqRight:
		h.pushTripleFallbacks(properties.Border, bs.ToBorder(), out)

	case topEqBottom && topEqLeft:
		h.pushTripleFallbacks(properties.Border, bs.ToBorder(), out)
		h.sideDiff(bs, ie, q.inlineEnd, ids(q.inlineEnd), logicalSupported, out, ctx)

	case topEqBottom && topEqRight:
		h.pushTripleFallbacks(properties.Border, bs.ToBorder(), out)
		h.sideDiff(bs, is, q.inlineStart, ids(q.inlineStart), logicalSupported, out, ctx)

	case leftEqRight && bottomEqLeft:
		h.pushTripleFallbacks(properties.Border, is.ToBorder(), out)
		h.sideDiff(is, bs, q.blockStart, ids(q.blockStart), logicalSupported, out, ctx)

	case leftEqRight && topEqLeft:
		h.pushTripleFallbacks(properties.Border, is.ToBorder(), out)
		h.sideDiff(is, be, q.blockEnd, ids(q.blockEnd), logicalSupported, out, ctx)

	case topEqBottom:
		h.propDiff(bs, q.isLogical, true, out, ctx, func() {
			handled := false
			if q.isLogical {
				diff := 0
				if !widthEqual(is.Width, bs.Width) || !widthEqual(ie.Width, bs.Width) {
					diff++
				}
				if !styleEqual(is.Style, bs.Style) || !styleEqual(ie.Style, bs.Style) {
					diff++
				}
				if !colorEqual(is.Color, bs.Color) || !colorEqual(ie.Color, bs.Color) {
					diff++
				}
				switch {
				case diff == 1 && !widthEqual(is.Width, bs.Width):
					out.Push(properties.Property{ID: properties.BorderInlineWidth, Value: WidthPair{Start: *is.Width, End: *ie.Width}})
					handled = true
				case diff == 1 && !styleEqual(is.Style, bs.Style):
					out.Push(properties.Property{ID: properties.BorderInlineStyle, Value: StylePair{Start: *is.Style, End: *ie.Style}})
					handled = true
				case diff == 1 && !colorEqual(is.Color, bs.Color):
					h.pushColorPairFallbacks(properties.BorderInlineColor, ColorPair{Start: *is.Color, End: *ie.Color}, out)
					handled = true
				case diff > 1 && is.Equal(*ie):
					h.pushTripleFallbacks(properties.BorderInline, is.ToBorder(), out)
					handled = true
				}
			}
			if !handled {
				h.sideDiff(bs, is, q.inlineStart, ids(q.inlineStart), logicalSupported, out, ctx)
				h.sideDiff(bs, ie, q.inlineEnd, ids(q.inlineEnd), logicalSupported, out, ctx)
			}
		})

	case leftEqRight:
		h.propDiff(is, q.isLogical, true, out, ctx, func() {
			h.sideDiff(is, bs, q.blockStart, ids(q.blockStart), logicalSupported, out, ctx)
			h.sideDiff(is, be, q.blockEnd, ids(q.blockEnd), logicalSupported, out, ctx)
		})

	case bottomEqRight:
		h.propDiff(be, q.isLogical, true, out, ctx, func() {
			h.sideDiff(be, bs, q.blockStart, ids(q.blockStart), logicalSupported, out, ctx)
			h.sideDiff(be, is, q.inlineStart, ids(q.inlineStart), logicalSupported, out, ctx)
		})

	default:
		h.propDiff(bs, q.isLogical, false, out, ctx, func() {
			h.emitTriple(q.blockStart, bs.ToBorder(), logicalSupported, out, ctx)
			h.emitTriple(q.blockEnd, be.ToBorder(), logicalSupported, out, ctx)
			h.emitTriple(q.inlineStart, is.ToBorder(), logicalSupported, out, ctx)
			h.emitTriple(q.inlineEnd, ie.ToBorder(), logicalSupported, out, ctx)
		})
	}
}

// propDiff is the source's prop_diff! macro with border_fallback=true:
// if two of the three sub-properties agree across the whole quartet,
// emit the "border" shorthand carrying the agreeing pair plus the third
// sub-property as a four-side rect. The three specific-pair arms only
// ever fire for the physical quartet (isLogical guards them off for the
// logical one, mirroring the source's `!$is_logical &&` guard); when
// none of them fire, borderFallback decides whether a "border" base
// value is emitted before running the fallback closure (the default,
// truly-all-four-different case passes false; every other caller passes
// true).
func (h *Handler) propDiff(rep *SideState, isLogical, borderFallback bool, out *properties.DeclarationList, ctx *context.PropertyHandlerContext, fallback func()) {
	if !isLogical && h.rectEqual(colorKey) && h.rectEqual(styleKey) {
		h.pushTripleFallbacks(properties.Border, rep.ToBorder(), out)
		h.collapseRectShorthand(properties.BorderWidth, widthKey, &h.top, &h.bottom, &h.left, &h.right, false, out, ctx)
		return
	}
	if !isLogical && h.rectEqual(widthKey) && h.rectEqual(styleKey) {
		h.pushTripleFallbacks(properties.Border, rep.ToBorder(), out)
		h.collapseRectShorthand(properties.BorderColor, colorKey, &h.top, &h.bottom, &h.left, &h.right, false, out, ctx)
		return
	}
	if !isLogical && h.rectEqual(widthKey) && h.rectEqual(colorKey) {
		h.pushTripleFallbacks(properties.Border, rep.ToBorder(), out)
		h.collapseRectShorthand(properties.BorderStyle, styleKey, &h.top, &h.bottom, &h.left, &h.right, false, out, ctx)
		return
	}
	if borderFallback {
		h.pushTripleFallbacks(properties.Border, rep.ToBorder(), out)
	}
	fallback()
}

// rectEqual reports whether the named sub-property agrees across all
// four physical sides (top/right/bottom/left), the is_eq! macro.
func (h *Handler) rectEqual(key subKey) bool {
	switch key {
	case widthKey:
		return widthEqual(h.top.Width, h.bottom.Width) && widthEqual(h.left.Width, h.right.Width) && widthEqual(h.left.Width, h.top.Width)
	case styleKey:
		return styleEqual(h.top.Style, h.bottom.Style) && styleEqual(h.left.Style, h.right.Style) && styleEqual(h.left.Style, h.top.Style)
	default:
		return colorEqual(h.top.Color, h.bottom.Color) && colorEqual(h.left.Color, h.right.Color) && colorEqual(h.left.Color, h.top.Color)
	}
}

// sideDiff is the source's side_diff! macro: given a side believed to
// be the common value and a second side that differs, emit only the
// sub-property that differs if just one does, otherwise the full
// triple for the second side.
func (h *Handler) sideDiff(rep, other *SideState, otherSide Side, ids sideIDs, logicalSupported bool, out *properties.DeclarationList, ctx *context.PropertyHandlerContext) {
	eqWidth := widthEqual(rep.Width, other.Width)
	eqStyle := styleEqual(rep.Style, other.Style)
	eqColor := colorEqual(rep.Color, other.Color)

	switch {
	case eqWidth && eqStyle:
		h.emitColor(otherSide, *other.Color, logicalSupported, ids, out, ctx)
	case eqWidth && eqColor:
		h.emitStyle(otherSide, *other.Style, logicalSupported, ids, out)
	case eqStyle && eqColor:
		h.emitWidth(otherSide, *other.Width, logicalSupported, ids, out)
	default:
		h.emitTriple(otherSide, other.ToBorder(), logicalSupported, out, ctx)
	}
}

// pushColorRectFallbacks pushes a border-color four-side rect together
// with its color fallback chain.
func (h *Handler) pushColorRectFallbacks(id properties.PropertyId, rect ColorRect, out *properties.DeclarationList) {
	if h.targets != nil {
		if fbs, err := colorRectFallbacks(&rect, *h.targets); err == nil {
			for _, fb := range fbs {
				out.Push(properties.Property{ID: id, Value: fb})
			}
		}
	}
	out.Push(properties.Property{ID: id, Value: rect})
}

// pushColorPairFallbacks is pushColorRectFallbacks's twin for the
// two-field axis color shorthands.
func (h *Handler) pushColorPairFallbacks(id properties.PropertyId, pair ColorPair, out *properties.DeclarationList) {
	if h.targets != nil {
		if fbs, err := colorPairFallbacks(&pair, *h.targets); err == nil {
			for _, fb := range fbs {
				out.Push(properties.Property{ID: id, Value: fb})
			}
		}
	}
	out.Push(properties.Property{ID: id, Value: pair})
}

// emitWidth is the width-only arm of the prop! macro: widths never
// carry color, so there is no fallback chain, only logical lowering.
func (h *Handler) emitWidth(side Side, val Width, logicalSupported bool, ids sideIDs, out *properties.DeclarationList) {
	switch side {
	case InlineStart:
		if logicalSupported {
			out.Push(properties.Property{ID: properties.BorderInlineStartWidth, Value: val})
		} else {
			out.Push(properties.Property{ID: properties.BorderLeftWidth, Value: val})
		}
	case InlineEnd:
		if logicalSupported {
			out.Push(properties.Property{ID: properties.BorderInlineEndWidth, Value: val})
		} else {
			out.Push(properties.Property{ID: properties.BorderRightWidth, Value: val})
		}
	case BlockStart:
		if logicalSupported {
			out.Push(properties.Property{ID: properties.BorderBlockStartWidth, Value: val})
		} else {
			out.Push(properties.Property{ID: properties.BorderTopWidth, Value: val})
		}
	case BlockEnd:
		if logicalSupported {
			out.Push(properties.Property{ID: properties.BorderBlockEndWidth, Value: val})
		} else {
			out.Push(properties.Property{ID: properties.BorderBottomWidth, Value: val})
		}
	default:
		out.Push(properties.Property{ID: ids.Width, Value: val})
	}
}

// emitStyle is the style-only arm of the prop! macro.
func (h *Handler) emitStyle(side Side, val LineStyle, logicalSupported bool, ids sideIDs, out *properties.DeclarationList) {
	switch side {
	case InlineStart:
		if logicalSupported {
			out.Push(properties.Property{ID: properties.BorderInlineStartStyle, Value: val})
		} else {
			out.Push(properties.Property{ID: properties.BorderLeftStyle, Value: val})
		}
	case InlineEnd:
		if logicalSupported {
			out.Push(properties.Property{ID: properties.BorderInlineEndStyle, Value: val})
		} else {
			out.Push(properties.Property{ID: properties.BorderRightStyle, Value: val})
		}
	case BlockStart:
		if logicalSupported {
			out.Push(properties.Property{ID: properties.BorderBlockStartStyle, Value: val})
		} else {
			out.Push(properties.Property{ID: properties.BorderTopStyle, Value: val})
		}
	case BlockEnd:
		if logicalSupported {
			out.Push(properties.Property{ID: properties.BorderBlockEndStyle, Value: val})
		} else {
			out.Push(properties.Property{ID: properties.BorderBottomStyle, Value: val})
		}
	default:
		out.Push(properties.Property{ID: ids.Style, Value: val})
	}
}

// emitColor is the color-only arm of the prop! macro: colors carry a
// fallback chain, except on the inline axis when logical support is
// absent, where the value is wrapped in a direction-selector rule
// instead (the source's logical_prop!, which clones the value verbatim
// with no fallback chain of its own).
func (h *Handler) emitColor(side Side, val color.Color, logicalSupported bool, ids sideIDs, out *properties.DeclarationList, ctx *context.PropertyHandlerContext) {
	switch side {
	case InlineStart:
		if logicalSupported {
			h.pushColorFallbacks(properties.BorderInlineStartColor, val, out)
		} else {
			ctx.AddLogicalRule(
				properties.Property{ID: properties.BorderLeftColor, Value: val},
				properties.Property{ID: properties.BorderRightColor, Value: val},
			)
		}
	case InlineEnd:
		if logicalSupported {
			h.pushColorFallbacks(properties.BorderInlineEndColor, val, out)
		} else {
			ctx.AddLogicalRule(
				properties.Property{ID: properties.BorderRightColor, Value: val},
				properties.Property{ID: properties.BorderLeftColor, Value: val},
			)
		}
	case BlockStart:
		if logicalSupported {
			h.pushColorFallbacks(properties.BorderBlockStartColor, val, out)
		} else {
			h.pushColorFallbacks(properties.BorderTopColor, val, out)
		}
	case BlockEnd:
		if logicalSupported {
			h.pushColorFallbacks(properties.BorderBlockEndColor, val, out)
		} else {
			h.pushColorFallbacks(properties.BorderBottomColor, val, out)
		}
	default:
		h.pushColorFallbacks(ids.Color, val, out)
	}
}

// pushColorFallbacks pushes a single color declaration together with
// its fallback chain.
func (h *Handler) pushColorFallbacks(id properties.PropertyId, val color.Color, out *properties.DeclarationList) {
	if h.targets != nil {
		if fbs, err := color.GetFallbacks(&val, *h.targets); err == nil {
			for _, fb := range fbs {
				out.Push(properties.Property{ID: id, Value: fb})
			}
		}
	}
	out.Push(properties.Property{ID: id, Value: val})
}

// emitTriple is the triple arm of the prop! macro: the per-side and
// per-axis shorthands, which always carry a color and so always carry a
// fallback chain, except on the inline axis without logical support,
// where (as with emitColor) the whole triple is wrapped in a
// direction-selector rule with no fallback chain.
func (h *Handler) emitTriple(side Side, val Triple, logicalSupported bool, out *properties.DeclarationList, ctx *context.PropertyHandlerContext) {
	switch side {
	case InlineStart:
		if logicalSupported {
			h.pushTripleFallbacks(properties.BorderInlineStart, val, out)
		} else {
			ctx.AddLogicalRule(
				properties.Property{ID: properties.BorderLeft, Value: val},
				properties.Property{ID: properties.BorderRight, Value: val},
			)
		}
	case InlineEnd:
		if logicalSupported {
			h.pushTripleFallbacks(properties.BorderInlineEnd, val, out)
		} else {
			ctx.AddLogicalRule(
				properties.Property{ID: properties.BorderRight, Value: val},
				properties.Property{ID: properties.BorderLeft, Value: val},
			)
		}
	case BlockStart:
		if logicalSupported {
			h.pushTripleFallbacks(properties.BorderBlockStart, val, out)
		} else {
			h.pushTripleFallbacks(properties.BorderTop, val, out)
		}
	case BlockEnd:
		if logicalSupported {
			h.pushTripleFallbacks(properties.BorderBlockEnd, val, out)
		} else {
			h.pushTripleFallbacks(properties.BorderBottom, val, out)
		}
	case Top:
		h.pushTripleFallbacks(properties.BorderTop, val, out)
	case Bottom:
		h.pushTripleFallbacks(properties.BorderBottom, val, out)
	case Left:
		h.pushTripleFallbacks(properties.BorderLeft, val, out)
	case Right:
		h.pushTripleFallbacks(properties.BorderRight, val, out)
	}
}

// pushTripleFallbacks pushes a per-side/per-axis/"border" shorthand
// triple together with the color fallback chain its embedded color
// needs.
func (h *Handler) pushTripleFallbacks(id properties.PropertyId, val Triple, out *properties.DeclarationList) {
	if h.targets != nil {
		if fbs, err := tripleFallbacks(&val, *h.targets); err == nil {
			for _, fb := range fbs {
				out.Push(properties.Property{ID: id, Value: fb})
			}
		}
	}
	out.Push(properties.Property{ID: id, Value: val})
}
