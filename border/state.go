package border

import "github.com/tawesoft/cssbox/css/color"

// SideState is the spec's BorderSideState: the three independently
// optional sub-properties (width, style, color) the handler accumulates
// for one side between flushes. A nil field means that sub-property has
// not been set since the last reset.
type SideState struct {
	Width *Width
	Style *LineStyle
	Color *color.Color
}

// SetBorder writes all three fields from a Triple, as the source's
// BorderShorthand::set_border does for a per-side/per-axis/"border"
// shorthand.
func (s *SideState) SetBorder(t Triple) {
	w, st, c := t.Width, t.Style, t.Color
	s.Width = &w
	s.Style = &st
	s.Color = &c
}

// IsValid reports whether all three sub-properties have been set.
func (s SideState) IsValid() bool {
	return s.Width != nil && s.Style != nil && s.Color != nil
}

// Reset clears all three sub-properties.
func (s *SideState) Reset() {
	s.Width = nil
	s.Style = nil
	s.Color = nil
}

// ToBorder constructs a Triple by unwrapping the three fields. The
// caller must have checked IsValid first.
func (s SideState) ToBorder() Triple {
	return Triple{Width: *s.Width, Style: *s.Style, Color: *s.Color}
}

func widthEqual(a, b *Width) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func styleEqual(a, b *LineStyle) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func colorEqual(a, b *color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// Equal reports whether s and o carry the same sub-property values
// (nil-aware: a field set on one side but not the other is unequal, per
// the source's #[derive(PartialEq)] on Option<T> fields).
func (s SideState) Equal(o SideState) bool {
	return widthEqual(s.Width, o.Width) && styleEqual(s.Style, o.Style) && colorEqual(s.Color, o.Color)
}
