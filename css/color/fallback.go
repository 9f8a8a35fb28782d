package color

import (
	"math/bits"

	"github.com/tawesoft/cssbox/compat"
)

// FallbackKind is a bitset over the four color-representation tiers a
// fallback chain can be built from, ordered from the most broadly
// supported to the least.
type FallbackKind uint8

const (
	FallbackRGB FallbackKind = 1 << iota
	FallbackP3
	FallbackLAB
	FallbackOKLAB
)

// AndBelow returns k plus every lower-ordered bit.
func (k FallbackKind) AndBelow() FallbackKind {
	return FallbackKind((uint8(k) << 1) - 1)
}

// Lowest returns the least significant set bit, or 0 if k is empty.
func (k FallbackKind) Lowest() FallbackKind {
	if k == 0 {
		return 0
	}
	return k & FallbackKind(-int8(k))
}

// Highest returns the most significant set bit, or 0 if k is empty.
func (k FallbackKind) Highest() FallbackKind {
	if k == 0 {
		return 0
	}
	return FallbackKind(1 << (7 - bits.LeadingZeros8(uint8(k))))
}

func (k FallbackKind) has(bit FallbackKind) bool { return k&bit != 0 }

// Has reports whether bit is set in k.
func (k FallbackKind) Has(bit FallbackKind) bool { return k.has(bit) }

// PossibleFallbacks computes the set of fallback tiers a color's
// representation might need to be accompanied by, given the compiler's
// targets, before accounting for which tiers those targets already
// support natively.
func PossibleFallbacks(c Color, targets compat.Browsers) FallbackKind {
	var possible FallbackKind
	switch {
	case c.Kind == CurrentColor || c.Kind == RGBA || c.Kind == FloatSRGB || c.Kind == HSL || c.Kind == HWB:
		return 0
	case c.Kind == Lab || c.Kind == LCH:
		possible = FallbackLAB.AndBelow()
	case c.Kind == OKLab || c.Kind == OKLCH:
		possible = FallbackOKLAB.AndBelow()
	case c.Kind == DisplayP3:
		possible = FallbackP3.AndBelow()
	case c.Kind.isPredefined():
		if compat.ColorFunction.IsCompatible(targets) {
			possible = 0
		} else {
			possible = FallbackLAB.AndBelow()
		}
	default:
		return 0
	}

	if possible.has(FallbackOKLAB) {
		if compat.OklabColors.IsCompatible(targets) {
			possible &^= FallbackLAB.AndBelow()
		}
	}
	if possible.has(FallbackLAB) {
		if compat.LabColors.IsCompatible(targets) {
			possible &^= FallbackP3.AndBelow()
		} else if compat.LabColors.IsPartiallyCompatible(targets) {
			possible &^= FallbackP3
		}
	}
	if possible.has(FallbackP3) {
		if compat.P3Colors.IsCompatible(targets) {
			possible &^= FallbackRGB
		} else if possible.Highest() != FallbackP3 && !compat.P3Colors.IsPartiallyCompatible(targets) {
			possible &^= FallbackP3
		}
	}
	return possible
}

// NecessaryFallbacks is PossibleFallbacks minus its own highest bit: the
// highest tier becomes the replacement for the original declaration, and
// the remainder are the preceding fallback declarations.
func NecessaryFallbacks(c Color, targets compat.Browsers) FallbackKind {
	possible := PossibleFallbacks(c, targets)
	return possible &^ possible.Highest()
}

// convertTo converts c to the representative color space for a fallback
// tier.
func (k FallbackKind) convertTo(c Color) (Color, error) {
	switch k {
	case FallbackRGB:
		return c.Convert(RGBA)
	case FallbackP3:
		return c.Convert(DisplayP3)
	case FallbackLAB:
		return c.Convert(Lab)
	default:
		panic("color: GetFallback called with kind outside {RGB,P3,LAB}")
	}
}

// GetFallback converts c directly to the representative color space for
// fallback tier kind, unconditionally (unlike GetFallbacks, it does not
// consult which tiers are "necessary" — callers that already know they
// want, e.g., the RGB representation of several colors call this once per
// color and decide for themselves whether to use the result, as the
// border four-side shorthands' fallback union does).
func GetFallback(c Color, kind FallbackKind) (Color, error) {
	return kind.convertTo(c)
}

// GetFallbacks computes the necessary fallback colors for c against
// targets, in ascending tier order (RGB, then P3, then Lab). If Lab is
// among the necessary tiers, the returned *c is rewritten in place to the
// Lab representation, so that the caller's own subsequent emission (the
// primary declaration) uses Lab rather than the original value — this
// three-tier emission is what lets older engines parse an early
// declaration and newer engines override it with the final one.
func GetFallbacks(c *Color, targets compat.Browsers) ([]Color, error) {
	necessary := NecessaryFallbacks(*c, targets)
	var out []Color
	for _, kind := range []FallbackKind{FallbackRGB, FallbackP3, FallbackLAB} {
		if !necessary.has(kind) {
			continue
		}
		conv, err := kind.convertTo(*c)
		if err != nil {
			return nil, err
		}
		out = append(out, conv)
	}
	if necessary.has(FallbackLAB) {
		conv, err := FallbackLAB.convertTo(*c)
		if err != nil {
			return nil, err
		}
		*c = conv
	}
	return out, nil
}
