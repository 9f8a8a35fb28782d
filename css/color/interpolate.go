package color

import "math"

// HueMethod is one of the five CSS Color 4 hue-interpolation methods used
// by color-mix() in a polar color space.
type HueMethod uint8

const (
	HueShorter HueMethod = iota
	HueLonger
	HueIncreasing
	HueDecreasing
	HueSpecified
)

// markPowerless sets powerless components to NaN, per CSS Color 4's
// interpolation algorithm step 2.
func markPowerless(k Kind, c *[3]float64) {
	switch k {
	case Lab, OKLab:
		if c[0] == 0 {
			c[1], c[2] = math.NaN(), math.NaN()
		}
	case LCH, OKLCH:
		if c[1] == 0 {
			c[2] = math.NaN()
		}
		if c[0] == 0 {
			c[1], c[2] = math.NaN(), math.NaN()
		}
	case HSL:
		if c[1] == 0 {
			c[0] = math.NaN()
		}
		if c[2] == 0 || c[2] == 1 {
			c[0], c[1] = math.NaN(), math.NaN()
		}
	case HWB:
		if c[1]+c[2] >= 1 {
			c[0] = math.NaN()
		}
	}
}

// fillMissing replaces NaN components in a and b with the other's value
// for that component (symmetric fill, step 3).
func fillMissing(a, b *[3]float64) {
	for i := 0; i < 3; i++ {
		if math.IsNaN(a[i]) && !math.IsNaN(b[i]) {
			a[i] = b[i]
		} else if math.IsNaN(b[i]) && !math.IsNaN(a[i]) {
			b[i] = a[i]
		}
	}
}

// hueIndex returns the index of the hue coordinate for a polar space.
func hueIndex(k Kind) int {
	switch k {
	case LCH, OKLCH:
		return 2
	case HSL, HWB:
		return 0
	default:
		return -1
	}
}

func adjustHue(method HueMethod, h1, h2 float64) (float64, float64) {
	if math.IsNaN(h1) || math.IsNaN(h2) {
		return h1, h2
	}
	h1, h2 = normalizeHue(h1), normalizeHue(h2)
	switch method {
	case HueShorter:
		d := h2 - h1
		if d > 180 {
			h1 += 360
		} else if d < -180 {
			h2 += 360
		}
	case HueLonger:
		d := h2 - h1
		if d > 0 && d < 180 {
			h2 -= 360
		} else if d > -180 && d < 0 {
			h1 -= 360
		}
	case HueIncreasing:
		if h2 < h1 {
			h2 += 360
		}
	case HueDecreasing:
		if h1 < h2 {
			h1 += 360
		}
	case HueSpecified:
		// no adjustment
	}
	return h1, h2
}

// Interpolate implements the color-mix() backing algorithm: converts both
// colors to method space T, gamut-maps if needed, marks powerless
// components, fills missing components symmetrically, applies hue
// interpolation, premultiplies by alpha, linearly interpolates, and
// un-premultiplies.
//
// p1 and p2 are the raw percentages from color-mix() (not yet normalized
// to sum to 1); their sum, clipped to [0,1], becomes an alpha multiplier
// per CSS Color 4 §9's underspecified-percentage handling.
func Interpolate(a, b Color, in Kind, method HueMethod, p1, p2 float64) (Color, error) {
	ca, err := a.Convert(in)
	if err != nil {
		return Color{}, err
	}
	cb, err := b.Convert(in)
	if err != nil {
		return Color{}, err
	}
	if !ca.InGamut() {
		ca, err = ca.GamutMap()
		if err != nil {
			return Color{}, err
		}
	}
	if !cb.InGamut() {
		cb, err = cb.GamutMap()
		if err != nil {
			return Color{}, err
		}
	}

	va, vb := ca.C, cb.C
	markPowerless(in, &va)
	markPowerless(in, &vb)
	fillMissing(&va, &vb)

	alphaA := resolveMissing(ca.Alpha)
	alphaB := resolveMissing(cb.Alpha)

	if hi := hueIndex(in); hi >= 0 {
		va[hi], vb[hi] = adjustHue(method, va[hi], vb[hi])
	}

	sum := p1 + p2
	w1, w2 := p1, p2
	if sum != 0 {
		w1, w2 = p1/sum, p2/sum
	}
	alphaMultiplier := clamp01(sum)

	premult := func(v [3]float64, alpha float64, hueIdx int) [3]float64 {
		out := v
		for i := 0; i < 3; i++ {
			if i == hueIdx {
				continue
			}
			out[i] = resolveMissing(out[i]) * alpha
		}
		return out
	}
	hi := hueIndex(in)
	pa := premult(va, alphaA, hi)
	pb := premult(vb, alphaB, hi)

	var result [3]float64
	for i := 0; i < 3; i++ {
		if i == hi {
			result[i] = va[i]*w1 + vb[i]*w2
			continue
		}
		result[i] = pa[i]*w1 + pb[i]*w2
	}
	// A hue missing on both sides (e.g. mixing two achromatic colors)
	// resolves to 0 instead of staying NaN.
	if hi >= 0 && math.IsNaN(result[hi]) {
		result[hi] = 0
	}
	resultAlpha := alphaA*w1 + alphaB*w2

	if resultAlpha != 0 {
		for i := 0; i < 3; i++ {
			if i == hi {
				continue
			}
			result[i] /= resultAlpha
		}
	}
	resultAlpha *= alphaMultiplier

	return Color{Kind: in, C: result, Alpha: resultAlpha}, nil
}
