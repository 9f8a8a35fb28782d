package color

import (
	"math"

	"github.com/tawesoft/cssbox/must"
	hc "honnef.co/go/color"
)

// honnef.co/go/color already registers sRGB, sRGB-linear, Display P3,
// ProPhoto, Lab, LCh, Oklab, Oklch, and both XYZ white points, and provides
// the CSS Color 4 OKLCH gamut-mapping binary search and Bradford chromatic
// adaptation. It doesn't register A98 RGB or Rec2020; this file adds them
// using its own exported ColorSpace API, following the same construction
// pattern as its unexported newRGBColorSpace helper.

func mulVec(c [3]float64, m *[3][3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*c[0] + m[0][1]*c[1] + m[0][2]*c[2],
		m[1][0]*c[0] + m[1][1]*c[1] + m[1][2]*c[2],
		m[2][0]*c[0] + m[2][1]*c[1] + m[2][2]*c[2],
	}
}

// A98 RGB <-> linear A98 RGB <-> XYZ D65 matrices, CSS Color 4 §10.
var a98ToXYZD65 = [3][3]float64{
	{0.5766690429101305, 0.1855582379065463, 0.1882286462349947},
	{0.2973449753205065, 0.6273635662554661, 0.0752914584240274},
	{0.0270313613864123, 0.0706888525358272, 0.9913375368376388},
}

var xyzD65ToA98 = [3][3]float64{
	{2.0415879038107465, -0.5650069742788596, -0.3447313507783297},
	{-0.9692436362808795, 1.8759675015077202, 0.0415550574587207},
	{0.0134442806320312, -0.1183623922310184, 1.0151749943912054},
}

func a98Gamma(abs float64) float64 { return math.Pow(abs, 2.19921875) }
func a98Ungamma(abs float64) float64 { return math.Pow(abs, 1.0/2.19921875) }

var linearA98RGB = (&hc.ColorSpace{
	ID:   "a98-rgb-linear",
	Name: "Linear A98 RGB",
	Base: hc.XYZ_D65,
	ToBase: func(c *[3]float64) [3]float64 {
		return mulVec(*c, &a98ToXYZD65)
	},
	FromBase: func(c *[3]float64) [3]float64 {
		return mulVec(*c, &xyzD65ToA98)
	},
}).Init()

var a98RGBSpace = (&hc.ColorSpace{
	ID:   "a98-rgb",
	Name: "A98 RGB",
	Base: linearA98RGB,
	FromBase: func(c *[3]float64) [3]float64 {
		f := func(ch float64) float64 {
			sign := 1.0
			if ch < 0 {
				sign = -1.0
			}
			return sign * a98Gamma(math.Abs(ch))
		}
		return [3]float64{f(c[0]), f(c[1]), f(c[2])}
	},
	ToBase: func(c *[3]float64) [3]float64 {
		f := func(ch float64) float64 {
			sign := 1.0
			if ch < 0 {
				sign = -1.0
			}
			return sign * a98Ungamma(math.Abs(ch))
		}
		return [3]float64{f(c[0]), f(c[1]), f(c[2])}
	},
}).Init()

// Rec2020 <-> linear Rec2020 <-> XYZ D65 matrices, CSS Color 4 §10.
var rec2020ToXYZD65 = [3][3]float64{
	{0.6369580483012914, 0.1446169035862083, 0.1688809751641721},
	{0.2627002120112671, 0.6779980715188708, 0.0593017164698621},
	{0.0000000000000000, 0.0280726930490874, 1.0609850577107909},
}

var xyzD65ToRec2020 = [3][3]float64{
	{1.7166511879712674, -0.3556707837763925, -0.2533662813736599},
	{-0.6666843518324893, 1.6164812366349395, 0.0157685458139111},
	{0.0176398574453108, -0.0427706132578085, 0.9421031212354738},
}

const (
	rec2020Alpha = 1.09929682680944
	rec2020Beta  = 0.018053968510807
)

var linearRec2020 = (&hc.ColorSpace{
	ID:   "rec2020-linear",
	Name: "Linear Rec2020",
	Base: hc.XYZ_D65,
	ToBase: func(c *[3]float64) [3]float64 {
		return mulVec(*c, &rec2020ToXYZD65)
	},
	FromBase: func(c *[3]float64) [3]float64 {
		return mulVec(*c, &xyzD65ToRec2020)
	},
}).Init()

var rec2020Space = (&hc.ColorSpace{
	ID:   "rec2020",
	Name: "Rec2020",
	Base: linearRec2020,
	FromBase: func(c *[3]float64) [3]float64 {
		f := func(ch float64) float64 {
			sign := 1.0
			abs := ch
			if ch < 0 {
				sign = -1.0
				abs = -ch
			}
			if abs < rec2020Beta {
				return 4.5 * ch
			}
			return sign * (rec2020Alpha*math.Pow(abs, 0.45) - (rec2020Alpha - 1))
		}
		return [3]float64{f(c[0]), f(c[1]), f(c[2])}
	},
	ToBase: func(c *[3]float64) [3]float64 {
		f := func(ch float64) float64 {
			sign := 1.0
			abs := ch
			if ch < 0 {
				sign = -1.0
				abs = -ch
			}
			if abs < rec2020Beta*4.5 {
				return ch / 4.5
			}
			return sign * math.Pow((abs+rec2020Alpha-1)/rec2020Alpha, 1.0/0.45)
		}
		return [3]float64{f(c[0]), f(c[1]), f(c[2])}
	},
}).Init()

func init() {
	hc.RegisterColorSpace(a98RGBSpace)
	hc.RegisterColorSpace(rec2020Space)
}

// honnefSpace maps a predefined/Lab-family Kind to its honnef.co/go/color
// space. It returns nil for kinds honnef.co/go/color has no notion of
// (RGBA, CurrentColor, HSL, HWB, FloatSRGB all route through SRGB instead).
func honnefSpace(k Kind) *hc.ColorSpace {
	switch k {
	case Lab:
		return hc.Lab
	case LCH:
		return hc.LCh
	case OKLab:
		return hc.Oklab
	case OKLCH:
		return hc.Oklch
	case SRGB, FloatSRGB, RGBA, HSL, HWB:
		return hc.SRGB
	case SRGBLinear:
		return hc.LinearSRGB
	case DisplayP3:
		return hc.DisplayP3
	case A98RGB:
		return a98RGBSpace
	case ProPhoto:
		return hc.ProPhoto
	case Rec2020:
		return rec2020Space
	case XYZD50:
		return hc.XYZ_D50
	case XYZD65:
		return hc.XYZ_D65
	default:
		return nil
	}
}

// toHonnef converts c's coordinates (as CSS Color 4 defines them: Lightness
// normalized to [0,1], hue in degrees) into honnef.co/go/color's own
// coordinate conventions for the same space (Lightness as 0-100 for
// Lab/LCh, hue in degrees).
func (c Color) toHonnef() hc.Color {
	if c.Kind == RGBA {
		v := [3]float64{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
		return hc.Color{Values: v, Space: hc.SRGB, Alpha: float64(c.A) / 255}
	}
	v := [3]float64{resolveMissing(c.C[0]), resolveMissing(c.C[1]), resolveMissing(c.C[2])}
	switch c.Kind {
	case Lab, LCH:
		v[0] *= 100.0
	}
	return hc.Color{Values: v, Space: honnefSpace(c.Kind), Alpha: resolveMissing(c.Alpha)}
}

// fromHonnef is the inverse of toHonnef for the destination Kind k.
func fromHonnef(k Kind, hcc hc.Color, alpha float64) Color {
	v := hcc.Values
	switch k {
	case Lab, LCH:
		v[0] /= 100.0
	}
	if k == LCH || k == OKLCH {
		v[2] = normalizeHue(v[2])
	}
	return Color{Kind: k, C: v, Alpha: alpha}
}

func normalizeHue(h float64) float64 {
	if math.IsNaN(h) {
		return h
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// Convert converts c to the destination color space k, without gamut
// mapping. currentColor cannot be converted and returns ErrNotApplicable.
func (c Color) Convert(k Kind) (Color, error) {
	if c.Kind == CurrentColor {
		return Color{}, ErrNotApplicable
	}
	if k == CurrentColor {
		return Color{}, ErrNotApplicable
	}
	if k == RGBA {
		srgb, err := c.Convert(FloatSRGB)
		if err != nil {
			return Color{}, err
		}
		r := clampUint8(resolveMissing(srgb.C[0]) * 255.0)
		g := clampUint8(resolveMissing(srgb.C[1]) * 255.0)
		b := clampUint8(resolveMissing(srgb.C[2]) * 255.0)
		a := clampUint8(resolveMissing(srgb.Alpha) * 255.0)
		return NewRGBA(r, g, b, a), nil
	}

	alpha := c.Alpha
	if c.Kind == RGBA {
		alpha = float64(c.A) / 255.0
	}

	// HSL/HWB are not known to honnef.co/go/color; convert via sRGB.
	if c.Kind == HSL || c.Kind == HWB {
		rgb := c.toSRGBFloat()
		return rgb.Convert(k)
	}
	if k == HSL {
		srgb, err := c.Convert(FloatSRGB)
		if err != nil {
			return Color{}, err
		}
		return srgbToHSL(srgb), nil
	}
	if k == HWB {
		srgb, err := c.Convert(FloatSRGB)
		if err != nil {
			return Color{}, err
		}
		return srgbToHWB(srgb), nil
	}

	src := c.toHonnef()
	dstSpace := honnefSpace(k)
	out := src.Convert(dstSpace)
	return fromHonnef(k, out, alpha), nil
}

// toSRGBFloat converts an HSL or HWB color directly to a FloatSRGB color
// (hand-written, since honnef.co/go/color has no notion of these spaces).
func (c Color) toSRGBFloat() Color {
	switch c.Kind {
	case HSL:
		r, g, b := hslToRGB(resolveMissing(c.C[0]), resolveMissing(c.C[1]), resolveMissing(c.C[2]))
		return NewFloat(FloatSRGB, r, g, b, c.Alpha)
	case HWB:
		r, g, b := hwbToRGB(resolveMissing(c.C[0]), resolveMissing(c.C[1]), resolveMissing(c.C[2]))
		return NewFloat(FloatSRGB, r, g, b, c.Alpha)
	default:
		must.Never("toSRGBFloat called on non-HSL/HWB kind %s", c.Kind)
		return Color{}
	}
}

func hueToRGBChannel(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

// hslToRGB converts hue (degrees), saturation and lightness (both [0,1])
// into sRGB [0,1] channels.
func hslToRGB(h, s, l float64) (r, g, b float64) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	hh := h / 360.0
	if s == 0 {
		return l, l, l
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return hueToRGBChannel(p, q, hh+1.0/3.0),
		hueToRGBChannel(p, q, hh),
		hueToRGBChannel(p, q, hh-1.0/3.0)
}

func srgbToHSL(c Color) Color {
	r, g, b := resolveMissing(c.C[0]), resolveMissing(c.C[1]), resolveMissing(c.C[2])
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2
	var h, s float64
	d := max - min
	if d == 0 {
		h, s = 0, 0
	} else {
		if l > 0.5 {
			s = d / (2 - max - min)
		} else {
			s = d / (max + min)
		}
		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		case b:
			h = (r-g)/d + 4
		}
		h *= 60
	}
	return NewFloat(HSL, h, s, l, c.Alpha)
}

// hwbToRGB converts hue (degrees), whiteness and blackness (both [0,1])
// into sRGB [0,1] channels.
func hwbToRGB(h, w, bl float64) (r, g, b float64) {
	if w+bl >= 1 {
		gray := w / (w + bl)
		return gray, gray, gray
	}
	r, g, b = hslToRGB(h, 1, 0.5)
	scale := 1 - w - bl
	f := func(c float64) float64 { return c*scale + w }
	return f(r), f(g), f(b)
}

func srgbToHWB(c Color) Color {
	hsl := srgbToHSL(c)
	r, g, b := resolveMissing(c.C[0]), resolveMissing(c.C[1]), resolveMissing(c.C[2])
	w := math.Min(r, math.Min(g, b))
	bl := 1 - math.Max(r, math.Max(g, b))
	return NewFloat(HWB, resolveMissing(hsl.C[0]), w, bl, c.Alpha)
}

// InGamut reports whether c's own coordinates lie within its color space's
// gamut. Unbounded spaces (Lab, OKLab, LCH, OKLCH, XYZ) are always in
// gamut.
func (c Color) InGamut() bool {
	if c.Kind == CurrentColor || c.Kind == RGBA {
		return true
	}
	if !c.Kind.isBoundedGamut() {
		return true
	}
	if c.Kind == HSL || c.Kind == HWB {
		s, l := resolveMissing(c.C[1]), resolveMissing(c.C[2])
		if c.Kind == HSL {
			return s >= -1e-4 && s <= 1+1e-4 && l >= -1e-4 && l <= 1+1e-4
		}
		w, bl := s, l
		return w >= -1e-4 && bl >= -1e-4
	}
	v := [3]float64{resolveMissing(c.C[0]), resolveMissing(c.C[1]), resolveMissing(c.C[2])}
	return honnefSpace(c.Kind).InGamut(v)
}

// GamutMap performs CSS Color 4's gamut mapping algorithm, returning c
// mapped into its own color space if it is out of gamut. In-gamut colors
// and colors in unbounded spaces are returned unchanged.
func (c Color) GamutMap() (Color, error) {
	if c.Kind == CurrentColor {
		return Color{}, ErrNotApplicable
	}
	if c.InGamut() {
		return c, nil
	}
	if c.Kind == HSL || c.Kind == HWB {
		srgb := c.toSRGBFloat()
		mapped, err := mapSRGBFamily(srgb)
		if err != nil {
			return Color{}, err
		}
		return mapped.Convert(c.Kind)
	}
	return mapSRGBFamily(c)
}

// mapSRGBFamily runs honnef.co/go/color's GamutMapCSS for any bounded,
// honnef-known space (sRGB, sRGB-linear, P3, A98, ProPhoto, Rec2020, RGBA).
func mapSRGBFamily(c Color) (Color, error) {
	alpha := c.Alpha
	if c.Kind == RGBA {
		alpha = float64(c.A) / 255.0
	}
	src := c.toHonnef()
	out := hc.GamutMapCSS(&src, honnefSpace(c.Kind))
	return fromHonnef(c.Kind, out, alpha), nil
}
