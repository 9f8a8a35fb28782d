package border

import (
	"github.com/tawesoft/cssbox/compat"
	"github.com/tawesoft/cssbox/css/color"
)

// tripleFallbacks computes the fallback chain for a color-carrying
// shorthand triple: the color's own fallback chain, reusing the
// triple's width/style unchanged, mirroring the source's
// impl FallbackValues for GenericBorder.
func tripleFallbacks(val *Triple, targets compat.Browsers) ([]Triple, error) {
	colors, err := color.GetFallbacks(&val.Color, targets)
	if err != nil {
		return nil, err
	}
	out := make([]Triple, len(colors))
	for i, c := range colors {
		out[i] = Triple{Width: val.Width, Style: val.Style, Color: c}
	}
	return out, nil
}

// colorRectFallbacks computes the fallback chain for a four-side color
// rect (border-color), per the source's impl_fallbacks! macro: the union
// of each side's necessary fallback tiers decides which tiers get a full
// four-side rect emitted, and within an emitted tier every side is
// unconditionally converted to that tier's representative space (not
// just the sides that individually needed it).
func colorRectFallbacks(val *ColorRect, targets compat.Browsers) ([]ColorRect, error) {
	var union color.FallbackKind
	for _, c := range [4]color.Color{val.Top, val.Right, val.Bottom, val.Left} {
		union |= color.NecessaryFallbacks(c, targets)
	}

	convertAll := func(kind color.FallbackKind) (ColorRect, error) {
		var r ColorRect
		var err error
		if r.Top, err = color.GetFallback(val.Top, kind); err != nil {
			return ColorRect{}, err
		}
		if r.Right, err = color.GetFallback(val.Right, kind); err != nil {
			return ColorRect{}, err
		}
		if r.Bottom, err = color.GetFallback(val.Bottom, kind); err != nil {
			return ColorRect{}, err
		}
		if r.Left, err = color.GetFallback(val.Left, kind); err != nil {
			return ColorRect{}, err
		}
		return r, nil
	}

	var out []ColorRect
	if union.Has(color.FallbackRGB) {
		r, err := convertAll(color.FallbackRGB)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if union.Has(color.FallbackP3) {
		r, err := convertAll(color.FallbackP3)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if union.Has(color.FallbackLAB) {
		r, err := convertAll(color.FallbackLAB)
		if err != nil {
			return nil, err
		}
		*val = r
	}
	return out, nil
}

// colorPairFallbacks is colorRectFallbacks's twin for the two-field axis
// color shorthands (border-block-color, border-inline-color).
func colorPairFallbacks(val *ColorPair, targets compat.Browsers) ([]ColorPair, error) {
	union := color.NecessaryFallbacks(val.Start, targets) | color.NecessaryFallbacks(val.End, targets)

	convertBoth := func(kind color.FallbackKind) (ColorPair, error) {
		var r ColorPair
		var err error
		if r.Start, err = color.GetFallback(val.Start, kind); err != nil {
			return ColorPair{}, err
		}
		if r.End, err = color.GetFallback(val.End, kind); err != nil {
			return ColorPair{}, err
		}
		return r, nil
	}

	var out []ColorPair
	if union.Has(color.FallbackRGB) {
		r, err := convertBoth(color.FallbackRGB)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if union.Has(color.FallbackP3) {
		r, err := convertBoth(color.FallbackP3)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if union.Has(color.FallbackLAB) {
		r, err := convertBoth(color.FallbackLAB)
		if err != nil {
			return nil, err
		}
		*val = r
	}
	return out, nil
}
