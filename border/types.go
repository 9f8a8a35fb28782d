package border

import (
	"github.com/tawesoft/cssbox/css/color"
	"github.com/tawesoft/cssbox/printer"
	"github.com/tawesoft/cssbox/properties"
)

// Side names the eight positions the handler tracks state for. Physical
// sides are writing-mode independent; logical sides are resolved to
// physical ones (or left alone) depending on target browser support.
//
// The spec's design notes call out the source's const-generic
// GenericBorder<S, const P: u8> tag as droppable: this enum plus the
// sideTable below is the table-driven dispatch that replaces it.
type Side uint8

const (
	Top Side = iota
	Right
	Bottom
	Left
	BlockStart
	BlockEnd
	InlineStart
	InlineEnd
)

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case BlockStart:
		return "block-start"
	case BlockEnd:
		return "block-end"
	case InlineStart:
		return "inline-start"
	case InlineEnd:
		return "inline-end"
	default:
		return "?"
	}
}

// category is the Physical/Logical/Uninit tag the spec's
// BorderHandlerState keeps to remember the most recently observed side
// category, so the handler can flush when that category changes.
type category uint8

const (
	catUninit category = iota
	catPhysical
	catLogical
)

// Category reports which category s belongs to.
func (s Side) Category() category {
	switch s {
	case Top, Right, Bottom, Left:
		return catPhysical
	default:
		return catLogical
	}
}

// sideIDs is the per-side table of PropertyIds this side's declarations
// are emitted under: the per-side shorthand plus its three longhands.
type sideIDs struct {
	Shorthand, Width, Style, Color properties.PropertyId
}

var sideTable = map[Side]sideIDs{
	Top:         {properties.BorderTop, properties.BorderTopWidth, properties.BorderTopStyle, properties.BorderTopColor},
	Right:       {properties.BorderRight, properties.BorderRightWidth, properties.BorderRightStyle, properties.BorderRightColor},
	Bottom:      {properties.BorderBottom, properties.BorderBottomWidth, properties.BorderBottomStyle, properties.BorderBottomColor},
	Left:        {properties.BorderLeft, properties.BorderLeftWidth, properties.BorderLeftStyle, properties.BorderLeftColor},
	BlockStart:  {properties.BorderBlockStart, properties.BorderBlockStartWidth, properties.BorderBlockStartStyle, properties.BorderBlockStartColor},
	BlockEnd:    {properties.BorderBlockEnd, properties.BorderBlockEndWidth, properties.BorderBlockEndStyle, properties.BorderBlockEndColor},
	InlineStart: {properties.BorderInlineStart, properties.BorderInlineStartWidth, properties.BorderInlineStartStyle, properties.BorderInlineStartColor},
	InlineEnd:   {properties.BorderInlineEnd, properties.BorderInlineEndWidth, properties.BorderInlineEndStyle, properties.BorderInlineEndColor},
}

// Triple is the GenericBorder(S) value: the (width, style, color) triple
// shared by every per-side/per-axis/"border" shorthand (and, in the
// source, by outline — reuse this module does not need, since outline is
// out of this handler's scope; see DESIGN.md).
type Triple struct {
	Width Width
	Style LineStyle
	Color color.Color
}

// DefaultTriple is the initial value of border/border-top/etc: medium
// width, no style, currentColor.
var DefaultTriple = Triple{Width: DefaultWidth, Style: DefaultStyle, Color: color.NewCurrentColor()}

// Equal reports whether t and o would serialize identically.
func (t Triple) Equal(o Triple) bool {
	return t.Width == o.Width && t.Style == o.Style && t.Color.Equal(o.Color)
}

// Serialize writes t in its shorthand CSS form: the default value
// collapses to just the style keyword (matching the source's ToCss,
// which special-cases GenericBorder::default()).
func (t Triple) Serialize(p printer.Printer) error {
	if t.Equal(DefaultTriple) {
		return t.Style.Serialize(p)
	}
	needsSpace := false
	if t.Width != DefaultWidth {
		if err := t.Width.Serialize(p); err != nil {
			return err
		}
		needsSpace = true
	}
	if t.Style != DefaultStyle {
		if needsSpace {
			if err := p.WriteChar(' '); err != nil {
				return err
			}
		}
		if err := t.Style.Serialize(p); err != nil {
			return err
		}
		needsSpace = true
	}
	if !t.Color.Equal(color.NewCurrentColor()) {
		if needsSpace {
			if err := p.WriteChar(' '); err != nil {
				return err
			}
		}
		return t.Color.Serialize(p)
	}
	return nil
}

// WidthRect, StyleRect and ColorRect are the four-side shorthand payload
// types for border-width/border-style/border-color, in top/right/bottom/
// left order (the CSS "rect" shorthand order).
type WidthRect struct{ Top, Right, Bottom, Left Width }
type StyleRect struct{ Top, Right, Bottom, Left LineStyle }
type ColorRect struct{ Top, Right, Bottom, Left color.Color }

// WidthPair, StylePair and ColorPair are the axis sub-property shorthand
// payload types (border-block-width, border-inline-color, etc): a
// (start, end) pair along one logical axis.
type WidthPair struct{ Start, End Width }
type StylePair struct{ Start, End LineStyle }
type ColorPair struct{ Start, End color.Color }
