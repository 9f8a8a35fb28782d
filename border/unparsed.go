package border

import (
	"github.com/tawesoft/cssbox/compat"
	"github.com/tawesoft/cssbox/context"
	"github.com/tawesoft/cssbox/properties"
)

// retag returns a copy of u addressed to id instead of its own PropertyId.
func retag(u *properties.Unparsed, id properties.PropertyId) *properties.Unparsed {
	return &properties.Unparsed{ID: id, Tokens: u.Tokens, Important: u.Important}
}

// flushUnparsed handles a border-family declaration this module's limited
// Property model left as an opaque token run, typically one containing a
// var() reference. When the target browsers support logical borders it is
// pushed through unchanged; otherwise it is retagged to its physical
// equivalent, duplicated under direction guards for the inline axis where
// direction makes left/right ambiguous, or pushed straight through for
// everything else (including the four-side and axis shorthands, which have
// no narrower physical form to fall back to).
func (h *Handler) flushUnparsed(unparsed *properties.Unparsed, dest *properties.DeclarationList, ctx *context.PropertyHandlerContext) {
	if ctx.IsSupported(compat.LogicalBorders) {
		u := *unparsed
		ctx.AddUnparsedFallbacks(&u)
		dest.Push(properties.Property{ID: properties.Unparsed, Value: &u})
		return
	}

	logicalPair := func(ltr, rtl properties.PropertyId) {
		ctx.AddLogicalRule(
			properties.Property{ID: properties.Unparsed, Value: retag(unparsed, ltr)},
			properties.Property{ID: properties.Unparsed, Value: retag(unparsed, rtl)},
		)
	}
	prop := func(id properties.PropertyId) {
		u := retag(unparsed, id)
		ctx.AddUnparsedFallbacks(u)
		dest.Push(properties.Property{ID: properties.Unparsed, Value: u})
	}

	switch unparsed.ID {
	case properties.BorderInlineStart:
		logicalPair(properties.BorderLeft, properties.BorderRight)
	case properties.BorderInlineStartWidth:
		logicalPair(properties.BorderLeftWidth, properties.BorderRightWidth)
	case properties.BorderInlineStartColor:
		logicalPair(properties.BorderLeftColor, properties.BorderRightColor)
	case properties.BorderInlineStartStyle:
		logicalPair(properties.BorderLeftStyle, properties.BorderRightStyle)
	case properties.BorderInlineEnd:
		logicalPair(properties.BorderRight, properties.BorderLeft)
	case properties.BorderInlineEndWidth:
		logicalPair(properties.BorderRightWidth, properties.BorderLeftWidth)
	case properties.BorderInlineEndColor:
		logicalPair(properties.BorderRightColor, properties.BorderLeftColor)
	case properties.BorderInlineEndStyle:
		logicalPair(properties.BorderRightStyle, properties.BorderLeftStyle)
	case properties.BorderBlockStart:
		prop(properties.BorderTop)
	case properties.BorderBlockStartWidth:
		prop(properties.BorderTopWidth)
	case properties.BorderBlockStartColor:
		prop(properties.BorderTopColor)
	case properties.BorderBlockStartStyle:
		prop(properties.BorderTopStyle)
	case properties.BorderBlockEnd:
		prop(properties.BorderBottom)
	case properties.BorderBlockEndWidth:
		prop(properties.BorderBottomWidth)
	case properties.BorderBlockEndColor:
		prop(properties.BorderBottomColor)
	case properties.BorderBlockEndStyle:
		prop(properties.BorderBottomStyle)
	default:
		u := *unparsed
		ctx.AddUnparsedFallbacks(&u)
		dest.Push(properties.Property{ID: properties.Unparsed, Value: &u})
	}
}
