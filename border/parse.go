package border

import (
	"fmt"

	"github.com/tawesoft/cssbox/css/color"
	"github.com/tawesoft/cssbox/css/tokenizer/token"
	"github.com/tawesoft/cssbox/properties"
)

var (
	errInvalidTriple = fmt.Errorf("border: invalid border shorthand value")
	errInvalidRect   = fmt.Errorf("border: invalid four-side shorthand value")
	errInvalidPair   = fmt.Errorf("border: invalid axis shorthand value")
)

// cursor walks a token slice one value at a time. It implements
// [color.Tokenizer] directly, so [color.ParseColor] can consume exactly
// the tokens one color value needs (a bare ident, a hash, or a balanced
// function call) while leaving the cursor positioned just past it.
type cursor struct {
	toks []token.Token
	pos  int
}

func newCursor(toks []token.Token) *cursor {
	filtered := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		if !t.Is(token.TypeWhitespace) {
			filtered = append(filtered, t)
		}
	}
	return &cursor{toks: filtered}
}

func (c *cursor) peek() (token.Token, bool) {
	if c.pos >= len(c.toks) {
		return token.Token{}, false
	}
	return c.toks[c.pos], true
}

func (c *cursor) Next() token.Token {
	if c.pos >= len(c.toks) {
		return token.EOF()
	}
	t := c.toks[c.pos]
	c.pos++
	return t
}

func (c *cursor) done() bool { return c.pos >= len(c.toks) }

// ParseTriple parses a border/border-top/border-block/etc shorthand: a
// width, a line-style and a color, in any order, any subset present.
// Grounded on the source's GenericBorder::parse loop, which tries each
// of the three in turn and restarts after a style or color match so a
// later width is still picked up.
func ParseTriple(toks []token.Token) (Triple, error) {
	c := newCursor(toks)
	var width *Width
	var style *LineStyle
	var col *color.Color
	any := false

	for {
		matched := false

		if width == nil {
			if t, ok := c.peek(); ok {
				if w, err := ParseWidth(t); err == nil {
					width = &w
					c.pos++
					any = true
					matched = true
				}
			}
		}

		if style == nil {
			if t, ok := c.peek(); ok {
				if s, err := ParseLineStyle(t); err == nil {
					style = &s
					c.pos++
					any = true
					matched = true
					continue
				}
			}
		}

		if col == nil {
			save := c.pos
			if cc, err := color.ParseColor(c); err == nil {
				col = &cc
				any = true
				matched = true
				continue
			}
			c.pos = save
		}

		if !matched {
			break
		}
	}

	if !any || !c.done() {
		return Triple{}, errInvalidTriple
	}

	result := DefaultTriple
	if width != nil {
		result.Width = *width
	}
	if style != nil {
		result.Style = *style
	}
	if col != nil {
		result.Color = *col
	}
	return result, nil
}

// ParseWidthRect parses a border-width value: one to four <width>s,
// expanded top/right/bottom/left per the standard CSS 1-4 value rect
// syntax.
func ParseWidthRect(toks []token.Token) (WidthRect, error) {
	c := newCursor(toks)
	var vals []Width
	for !c.done() {
		t, _ := c.peek()
		w, err := ParseWidth(t)
		if err != nil {
			return WidthRect{}, err
		}
		vals = append(vals, w)
		c.pos++
	}
	switch len(vals) {
	case 1:
		return WidthRect{vals[0], vals[0], vals[0], vals[0]}, nil
	case 2:
		return WidthRect{vals[0], vals[1], vals[0], vals[1]}, nil
	case 3:
		return WidthRect{vals[0], vals[1], vals[2], vals[1]}, nil
	case 4:
		return WidthRect{vals[0], vals[1], vals[2], vals[3]}, nil
	default:
		return WidthRect{}, errInvalidRect
	}
}

// ParseStyleRect is ParseWidthRect's twin for border-style.
func ParseStyleRect(toks []token.Token) (StyleRect, error) {
	c := newCursor(toks)
	var vals []LineStyle
	for !c.done() {
		t, _ := c.peek()
		s, err := ParseLineStyle(t)
		if err != nil {
			return StyleRect{}, err
		}
		vals = append(vals, s)
		c.pos++
	}
	switch len(vals) {
	case 1:
		return StyleRect{vals[0], vals[0], vals[0], vals[0]}, nil
	case 2:
		return StyleRect{vals[0], vals[1], vals[0], vals[1]}, nil
	case 3:
		return StyleRect{vals[0], vals[1], vals[2], vals[1]}, nil
	case 4:
		return StyleRect{vals[0], vals[1], vals[2], vals[3]}, nil
	default:
		return StyleRect{}, errInvalidRect
	}
}

// ParseColorRect is ParseWidthRect's twin for border-color. Each value
// may itself span several tokens (a color-mix() or rgb() call), so
// values are read off the cursor with [color.ParseColor] rather than
// one token at a time.
func ParseColorRect(toks []token.Token) (ColorRect, error) {
	c := newCursor(toks)
	var vals []color.Color
	for !c.done() {
		cc, err := color.ParseColor(c)
		if err != nil {
			return ColorRect{}, err
		}
		vals = append(vals, cc)
	}
	switch len(vals) {
	case 1:
		return ColorRect{vals[0], vals[0], vals[0], vals[0]}, nil
	case 2:
		return ColorRect{vals[0], vals[1], vals[0], vals[1]}, nil
	case 3:
		return ColorRect{vals[0], vals[1], vals[2], vals[1]}, nil
	case 4:
		return ColorRect{vals[0], vals[1], vals[2], vals[3]}, nil
	default:
		return ColorRect{}, errInvalidRect
	}
}

// ParseWidthPair parses a border-block-width/border-inline-width value:
// one or two <width>s, (start) or (start, end).
func ParseWidthPair(toks []token.Token) (WidthPair, error) {
	c := newCursor(toks)
	var vals []Width
	for !c.done() {
		t, _ := c.peek()
		w, err := ParseWidth(t)
		if err != nil {
			return WidthPair{}, err
		}
		vals = append(vals, w)
		c.pos++
	}
	switch len(vals) {
	case 1:
		return WidthPair{vals[0], vals[0]}, nil
	case 2:
		return WidthPair{vals[0], vals[1]}, nil
	default:
		return WidthPair{}, errInvalidPair
	}
}

// ParseStylePair is ParseWidthPair's twin for the axis border-*-style
// shorthands.
func ParseStylePair(toks []token.Token) (StylePair, error) {
	c := newCursor(toks)
	var vals []LineStyle
	for !c.done() {
		t, _ := c.peek()
		s, err := ParseLineStyle(t)
		if err != nil {
			return StylePair{}, err
		}
		vals = append(vals, s)
		c.pos++
	}
	switch len(vals) {
	case 1:
		return StylePair{vals[0], vals[0]}, nil
	case 2:
		return StylePair{vals[0], vals[1]}, nil
	default:
		return StylePair{}, errInvalidPair
	}
}

// ParseColorPair is ParseWidthPair's twin for the axis border-*-color
// shorthands.
func ParseColorPair(toks []token.Token) (ColorPair, error) {
	c := newCursor(toks)
	var vals []color.Color
	for !c.done() {
		cc, err := color.ParseColor(c)
		if err != nil {
			return ColorPair{}, err
		}
		vals = append(vals, cc)
	}
	switch len(vals) {
	case 1:
		return ColorPair{vals[0], vals[0]}, nil
	case 2:
		return ColorPair{vals[0], vals[1]}, nil
	default:
		return ColorPair{}, errInvalidPair
	}
}

// ParseDeclaration builds a properties.Property for id from its raw
// value tokens, dispatching to the width/style/color/rect/pair/triple
// parser id's own shape needs. Property families this handler only
// buffers and never inspects (border-image, border-radius, outline) and
// any id ParseDeclaration doesn't otherwise recognise are passed through
// under their own id with their raw []token.Token as the value instead of
// being rejected outright.
func ParseDeclaration(id properties.PropertyId, toks []token.Token) (properties.Property, error) {
	switch id {
	case properties.BorderTopWidth, properties.BorderBottomWidth, properties.BorderLeftWidth,
		properties.BorderRightWidth, properties.BorderBlockStartWidth, properties.BorderBlockEndWidth,
		properties.BorderInlineStartWidth, properties.BorderInlineEndWidth:
		c := newCursor(toks)
		t, ok := c.peek()
		if !ok {
			return properties.Property{}, errInvalidWidth
		}
		w, err := ParseWidth(t)
		if err != nil {
			return properties.Property{}, err
		}
		return properties.Property{ID: id, Value: w}, nil

	case properties.BorderTopStyle, properties.BorderBottomStyle, properties.BorderLeftStyle,
		properties.BorderRightStyle, properties.BorderBlockStartStyle, properties.BorderBlockEndStyle,
		properties.BorderInlineStartStyle, properties.BorderInlineEndStyle:
		c := newCursor(toks)
		t, ok := c.peek()
		if !ok {
			return properties.Property{}, errInvalidStyle
		}
		s, err := ParseLineStyle(t)
		if err != nil {
			return properties.Property{}, err
		}
		return properties.Property{ID: id, Value: s}, nil

	case properties.BorderTopColor, properties.BorderBottomColor, properties.BorderLeftColor,
		properties.BorderRightColor, properties.BorderBlockStartColor, properties.BorderBlockEndColor,
		properties.BorderInlineStartColor, properties.BorderInlineEndColor:
		c := newCursor(toks)
		cc, err := color.ParseColor(c)
		if err != nil {
			return properties.Property{}, err
		}
		return properties.Property{ID: id, Value: cc}, nil

	case properties.BorderBlockWidth, properties.BorderInlineWidth:
		p, err := ParseWidthPair(toks)
		if err != nil {
			return properties.Property{}, err
		}
		return properties.Property{ID: id, Value: p}, nil
	case properties.BorderBlockStyle, properties.BorderInlineStyle:
		p, err := ParseStylePair(toks)
		if err != nil {
			return properties.Property{}, err
		}
		return properties.Property{ID: id, Value: p}, nil
	case properties.BorderBlockColor, properties.BorderInlineColor:
		p, err := ParseColorPair(toks)
		if err != nil {
			return properties.Property{}, err
		}
		return properties.Property{ID: id, Value: p}, nil

	case properties.BorderWidth:
		r, err := ParseWidthRect(toks)
		if err != nil {
			return properties.Property{}, err
		}
		return properties.Property{ID: id, Value: r}, nil
	case properties.BorderStyle:
		r, err := ParseStyleRect(toks)
		if err != nil {
			return properties.Property{}, err
		}
		return properties.Property{ID: id, Value: r}, nil
	case properties.BorderColor:
		r, err := ParseColorRect(toks)
		if err != nil {
			return properties.Property{}, err
		}
		return properties.Property{ID: id, Value: r}, nil

	case properties.BorderTop, properties.BorderBottom, properties.BorderLeft, properties.BorderRight,
		properties.BorderBlockStart, properties.BorderBlockEnd, properties.BorderInlineStart, properties.BorderInlineEnd,
		properties.BorderBlock, properties.BorderInline, properties.Border:
		tr, err := ParseTriple(toks)
		if err != nil {
			return properties.Property{}, err
		}
		return properties.Property{ID: id, Value: tr}, nil

	default:
		// border-image, border-radius, outline and custom-property values:
		// this module has no typed value model for them (the sibling
		// handlers only buffer the Property by ID, never inspecting
		// Value), so the raw tokens travel through unexamined.
		cp := make([]token.Token, len(toks))
		copy(cp, toks)
		return properties.Property{ID: id, Value: cp}, nil
	}
}
