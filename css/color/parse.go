package color

import (
	"fmt"
	"math"
	"strings"

	"github.com/tawesoft/cssbox/css/tokenizer"
	"github.com/tawesoft/cssbox/css/tokenizer/token"
)

// Tokenizer produces CSS tokens. A [tokenizer.Tokenizer] does not satisfy it
// directly (its Next also returns an ok flag); ParseColorString wraps one in
// tokenizerAdapter.
type Tokenizer interface {
	Next() token.Token
}

type errSyntax struct {
	err error
	at  token.Token
}

func (e errSyntax) Unwrap() error { return e.err }

func (e errSyntax) Error() string {
	return fmt.Sprintf("error near %s: %s", e.at.Type(), e.err.Error())
}

const maxFunctionArgs = 16 // e.g. color-mix(in oklch, red 25%, blue 75%)

var (
	ErrTooManyFunctionArguments  = fmt.Errorf("too many function arguments")
	ErrSyntax                    = fmt.Errorf("invalid color syntax")
	ErrUnexpectedEOF             = fmt.Errorf("unexpected end of file")
	ErrUnexpectedTrailing        = fmt.Errorf("unexpected trailing input")
	ErrNotSupportedNamedOrSystem = fmt.Errorf("named and system colors not supported")
	ErrUnrecognisedFunction      = fmt.Errorf("unrecognised function")
	ErrUnrecognisedColorSpace    = fmt.Errorf("unrecognised predefined color space")
	ErrInvalidArguments          = fmt.Errorf("invalid function arguments")
	ErrInvalidHex                = fmt.Errorf("invalid hexadecimal color")
)

func nextExcept(tok Tokenizer, exclude ...token.Type) token.Token {
	for {
		t := tok.Next()
		skip := false
		for _, ex := range exclude {
			if t.Is(ex) {
				skip = true
				break
			}
		}
		if !skip {
			return t
		}
	}
}

func nextExceptWS(tok Tokenizer) token.Token {
	return nextExcept(tok, token.TypeWhitespace)
}

// consumeBalancedFunctionArgs consumes a function's arguments, allowing
// nested functions (needed for color-mix(in ..., color-mix(...), blue)).
func consumeBalancedFunctionArgs(tok Tokenizer) (args []token.Token, err error) {
	depth := 0
	for {
		t := tok.Next()
		switch {
		case t.Is(token.TypeEOF):
			return args, ErrUnexpectedEOF
		case t.Is(token.TypeFunction):
			depth++
		case t.Is(token.TypeLeftParen):
			depth++
		case t.Is(token.TypeRightParen):
			if depth == 0 {
				return args, nil
			}
			depth--
		}
		if len(args)+1 > maxFunctionArgs {
			return args, errSyntax{ErrTooManyFunctionArguments, t}
		}
		args = append(args, t)
	}
}

// tokenizerAdapter adapts the low-level tokenizer.Tokenizer (which returns
// its own internal token representation) to the Tokenizer interface this
// package and its callers are written against.
type tokenizerAdapter struct {
	t tokenizer.Tokenizer
}

func (a *tokenizerAdapter) Next() token.Token {
	return a.t.NextToken()
}

// ParseColorString parses a color value from a string containing a color in
// CSS syntax.
func ParseColorString(s string) (Color, error) {
	a := &tokenizerAdapter{t: tokenizer.New(strings.NewReader(s))}
	c, err := ParseColor(a)
	if err == nil {
		t := nextExceptWS(a)
		if !t.Is(token.TypeEOF) {
			err = errSyntax{ErrUnexpectedTrailing, t}
		}
	}
	if errs := a.t.Errors(); len(errs) > 0 {
		return c, fmt.Errorf("parse errors: %+v", errs)
	}
	return c, err
}

// ParseColor parses a color value from CSS tokens.
func ParseColor(tok Tokenizer) (Color, error) {
	zero := Color{}
	t := nextExcept(tok, token.TypeWhitespace)
	if t.Is(token.TypeHash) {
		return parseColorFromHexadecimalString(t)
	} else if t.Is(token.TypeFunction) {
		args, err := consumeBalancedFunctionArgs(tok)
		if err != nil {
			return zero, err
		}
		return parseColorFromFunction(t, args)
	} else if t.Is(token.TypeIdent) {
		if strings.EqualFold(t.StringValue(), "currentcolor") {
			return NewCurrentColor(), nil
		}
		if rgb, ok := namedColorValue(t.StringValue()); ok {
			return NewRGBA(rgb[0], rgb[1], rgb[2], 255), nil
		}
		return zero, errSyntax{ErrNotSupportedNamedOrSystem, t}
	}
	return zero, errSyntax{ErrSyntax, t}
}

func namedColorValue(name string) ([3]uint8, bool) {
	for rgb, n := range namedColors {
		if strings.EqualFold(n, name) {
			return rgb, true
		}
	}
	return [3]uint8{}, false
}

func parseColorFromHexadecimalString(t token.Token) (Color, error) {
	x := t.StringValue()
	var err error
	digit := func(x byte) uint8 {
		switch {
		case x >= '0' && x <= '9':
			return x - '0'
		case x >= 'a' && x <= 'f':
			return x - 'a' + 10
		case x >= 'A' && x <= 'F':
			return x - 'A' + 10
		default:
			err = errSyntax{ErrInvalidHex, t}
			return 0
		}
	}
	scaleHex2 := func(a, b byte) uint8 { return digit(a)*16 + digit(b) }
	scaleHex1 := func(a byte) uint8 { return scaleHex2(a, a) }

	var r, g, b, a uint8
	a = 255
	switch len(x) {
	case 4:
		a = scaleHex1(x[3])
		fallthrough
	case 3:
		r, g, b = scaleHex1(x[0]), scaleHex1(x[1]), scaleHex1(x[2])
	case 8:
		a = scaleHex2(x[6], x[7])
		fallthrough
	case 6:
		r, g, b = scaleHex2(x[0], x[1]), scaleHex2(x[2], x[3]), scaleHex2(x[4], x[5])
	default:
		err = errSyntax{ErrInvalidHex, t}
	}
	if err != nil {
		return Color{}, err
	}
	return NewRGBA(r, g, b, a), nil
}

func parseColorFromFunction(f token.Token, args []token.Token) (Color, error) {
	zero := Color{}
	name := f.StringValue()
	switch {
	case strings.EqualFold(name, "rgb"), strings.EqualFold(name, "rgba"):
		return parseRGBFromFunction(f, args)
	case strings.EqualFold(name, "hsl"), strings.EqualFold(name, "hsla"):
		return parseHSLFromFunction(f, args)
	case strings.EqualFold(name, "hwb"):
		return parseHWBFromFunction(f, args)
	case strings.EqualFold(name, "lab"):
		return parseLabLike(f, args, Lab, 100.0)
	case strings.EqualFold(name, "lch"):
		return parseLCHLike(f, args, LCH, 100.0)
	case strings.EqualFold(name, "oklab"):
		return parseLabLike(f, args, OKLab, 1.0)
	case strings.EqualFold(name, "oklch"):
		return parseLCHLike(f, args, OKLCH, 1.0)
	case strings.EqualFold(name, "color"):
		return parseColorFunction(f, args)
	case strings.EqualFold(name, "color-mix"):
		return parseColorMix(f, args)
	default:
		return zero, errSyntax{ErrUnrecognisedFunction, f}
	}
}

func step(args []token.Token) (next token.Token, rest []token.Token) {
	for len(args) > 0 && args[0].Is(token.TypeWhitespace) {
		args = args[1:]
	}
	if len(args) == 0 {
		return token.EOF(), nil
	}
	return args[0], args[1:]
}

func acceptEither(t token.Token, acceptors ...func(t token.Token) (float64, bool)) (float64, bool) {
	for _, acceptor := range acceptors {
		if value, ok := acceptor(t); ok {
			return value, true
		}
	}
	return math.NaN(), false
}

func numericAcceptor(typ token.Type, scale float64) func(t token.Token) (float64, bool) {
	return func(t token.Token) (float64, bool) {
		if t.Is(typ) {
			_, nv := t.NumericValue()
			return nv * scale, true
		}
		return 0, false
	}
}

var acceptPercentage = numericAcceptor(token.TypePercentage, 0.01)
var acceptPercentage100 = numericAcceptor(token.TypePercentage, 1.0)
var acceptNumber = numericAcceptor(token.TypeNumber, 1.0)

func acceptNone(t token.Token) (float64, bool) {
	return math.NaN(), t.Is(token.TypeIdent) && strings.EqualFold(t.StringValue(), "none")
}

func acceptHueAngle(t token.Token) (float64, bool) {
	if t.Is(token.TypeNumber) {
		_, nv := t.NumericValue()
		return nv, true
	}
	if t.Is(token.TypeDimension) {
		unit := t.Unit()
		_, nv := t.NumericValue()
		switch strings.ToLower(unit) {
		case "deg":
			return nv, true
		case "grad":
			return nv * 0.9, true
		case "rad":
			return nv * 180.0 / math.Pi, true
		case "turn":
			return nv * 360.0, true
		}
	}
	return 0, false
}

func acceptSlashAlpha(rest []token.Token) (alpha float64, ok bool) {
	t, rest := step(rest)
	if t.Is(token.TypeEOF) {
		return 1.0, true
	}
	if !(t.Is(token.TypeDelim) && t.Delim() == '/') {
		return 0, false
	}
	t, rest = step(rest)
	a, ok := acceptEither(t, acceptPercentage, acceptNumber, acceptNone)
	if !ok {
		return 0, false
	}
	_, rest = step(rest)
	return a, true
}

func parseRGBFromFunction(f token.Token, args []token.Token) (Color, error) {
	zero := Color{}
	var r, g, b, a float64

	modern := func(acceptor func(t token.Token) (float64, bool)) bool {
		var ok bool
		rest := args

		t, rest := step(rest)
		r, ok = acceptEither(t, acceptor, acceptNone)
		if !ok {
			return false
		}
		t, rest = step(rest)
		g, ok = acceptEither(t, acceptor, acceptNone)
		if !ok {
			return false
		}
		t, rest = step(rest)
		b, ok = acceptEither(t, acceptor, acceptNone)
		if !ok {
			return false
		}
		a, ok = acceptSlashAlpha(rest)
		return ok
	}

	if modern(acceptPercentage) {
		return NewFloat(FloatSRGB, r, g, b, a).normOrRGBA(), nil
	}
	if modern(numericAcceptor(token.TypeNumber, 1.0/255.0)) {
		return NewFloat(FloatSRGB, r, g, b, a).normOrRGBA(), nil
	}

	legacy := func(acceptor func(t token.Token) (float64, bool)) bool {
		var ok bool
		rest := args

		t, rest := step(rest)
		r, ok = acceptor(t)
		if !ok {
			return false
		}
		t, rest = step(rest)
		if !t.Is(token.TypeComma) {
			return false
		}
		t, rest = step(rest)
		g, ok = acceptor(t)
		if !ok {
			return false
		}
		t, rest = step(rest)
		if !t.Is(token.TypeComma) {
			return false
		}
		t, rest = step(rest)
		b, ok = acceptor(t)
		if !ok {
			return false
		}
		t, rest = step(rest)
		if t.Is(token.TypeEOF) {
			a = 1.0
			return true
		}
		if !t.Is(token.TypeComma) {
			return false
		}
		t, rest = step(rest)
		a, ok = acceptEither(t, acceptPercentage, acceptNumber)
		if !ok {
			return false
		}
		_, rest = step(rest)
		return true
	}

	if legacy(acceptPercentage100) {
		r, g, b = r/100.0, g/100.0, b/100.0
		return NewFloat(FloatSRGB, r, g, b, a).normOrRGBA(), nil
	}
	if legacy(numericAcceptor(token.TypeNumber, 1.0/255.0)) {
		return NewFloat(FloatSRGB, r, g, b, a).normOrRGBA(), nil
	}

	return zero, errSyntax{ErrInvalidArguments, f}
}

// normOrRGBA clamps a fully-specified FloatSRGB color to [0,1]/[0,1] and
// converts it to the canonical RGBA representation; a color carrying a
// "none" component stays as Float so the NaN survives.
func (c Color) normOrRGBA() Color {
	if hasNaN(c.C) || math.IsNaN(c.Alpha) {
		return c
	}
	r := clampUint8(clamp01(c.C[0]) * 255.0)
	g := clampUint8(clamp01(c.C[1]) * 255.0)
	b := clampUint8(clamp01(c.C[2]) * 255.0)
	a := clampUint8(clamp01(c.Alpha) * 255.0)
	return NewRGBA(r, g, b, a)
}

func parseHSLFromFunction(f token.Token, args []token.Token) (Color, error) {
	zero := Color{}
	var h, s, l, a float64
	var ok bool
	rest := args

	t, rest := step(rest)
	h, ok = acceptEither(t, acceptHueAngle, acceptNone)
	if !ok {
		return zero, errSyntax{ErrInvalidArguments, f}
	}
	t, rest = step(rest)
	hasComma := t.Is(token.TypeComma)
	if hasComma {
		t, rest = step(rest)
	}
	s, ok = acceptEither(t, acceptPercentage, acceptNone)
	if !ok {
		return zero, errSyntax{ErrInvalidArguments, f}
	}
	t, rest = step(rest)
	if hasComma {
		if !t.Is(token.TypeComma) {
			return zero, errSyntax{ErrInvalidArguments, f}
		}
		t, rest = step(rest)
	}
	l, ok = acceptEither(t, acceptPercentage, acceptNone)
	if !ok {
		return zero, errSyntax{ErrInvalidArguments, f}
	}

	if hasComma {
		t, rest = step(rest)
		if t.Is(token.TypeEOF) {
			a = 1.0
		} else if t.Is(token.TypeComma) {
			t, rest = step(rest)
			a, ok = acceptEither(t, acceptPercentage, acceptNumber)
			if !ok {
				return zero, errSyntax{ErrInvalidArguments, f}
			}
		} else {
			return zero, errSyntax{ErrInvalidArguments, f}
		}
	} else {
		a, ok = acceptSlashAlpha(rest)
		if !ok {
			return zero, errSyntax{ErrInvalidArguments, f}
		}
	}

	s = clamp01(s)
	l = clamp01(l)
	a = clamp01(a)
	return NewFloat(HSL, h, s, l, a), nil
}

func parseHWBFromFunction(f token.Token, args []token.Token) (Color, error) {
	zero := Color{}
	var h, w, bl, a float64
	var ok bool
	rest := args

	t, rest := step(rest)
	h, ok = acceptEither(t, acceptHueAngle, acceptNone)
	if !ok {
		return zero, errSyntax{ErrInvalidArguments, f}
	}
	t, rest = step(rest)
	w, ok = acceptEither(t, acceptPercentage, acceptNone)
	if !ok {
		return zero, errSyntax{ErrInvalidArguments, f}
	}
	t, rest = step(rest)
	bl, ok = acceptEither(t, acceptPercentage, acceptNone)
	if !ok {
		return zero, errSyntax{ErrInvalidArguments, f}
	}
	a, ok = acceptSlashAlpha(rest)
	if !ok {
		return zero, errSyntax{ErrInvalidArguments, f}
	}

	w = clamp01(w)
	bl = clamp01(bl)
	a = clamp01(a)
	return NewFloat(HWB, h, w, bl, a), nil
}

func acceptLightness(scale float64) func(t token.Token) (float64, bool) {
	return func(t token.Token) (float64, bool) {
		if t.Is(token.TypePercentage) {
			_, nv := t.NumericValue()
			return clampNonNegative(nv / 100.0), true
		}
		if t.Is(token.TypeNumber) {
			_, nv := t.NumericValue()
			return clampNonNegative(nv / scale), true
		}
		return 0, false
	}
}

func parseLabLike(f token.Token, args []token.Token, kind Kind, lightnessScale float64) (Color, error) {
	zero := Color{}
	var l, a2, b2, alpha float64
	var ok bool
	rest := args

	t, rest := step(rest)
	l, ok = acceptEither(t, acceptLightness(lightnessScale), acceptNone)
	if !ok {
		return zero, errSyntax{ErrInvalidArguments, f}
	}
	acceptAB := acceptEitherNumOrPercent(lightnessScale == 100.0)
	t, rest = step(rest)
	a2, ok = acceptEither(t, acceptAB, acceptNone)
	if !ok {
		return zero, errSyntax{ErrInvalidArguments, f}
	}
	t, rest = step(rest)
	b2, ok = acceptEither(t, acceptAB, acceptNone)
	if !ok {
		return zero, errSyntax{ErrInvalidArguments, f}
	}
	alpha, ok = acceptSlashAlpha(rest)
	if !ok {
		return zero, errSyntax{ErrInvalidArguments, f}
	}
	return NewLabFamily(kind, l, a2, b2, alpha), nil
}

func parseLCHLike(f token.Token, args []token.Token, kind Kind, lightnessScale float64) (Color, error) {
	zero := Color{}
	var l, c, h, alpha float64
	var ok bool
	rest := args

	t, rest := step(rest)
	l, ok = acceptEither(t, acceptLightness(lightnessScale), acceptNone)
	if !ok {
		return zero, errSyntax{ErrInvalidArguments, f}
	}
	acceptChroma := acceptEitherNumOrPercent(lightnessScale == 100.0)
	t, rest = step(rest)
	c, ok = acceptEither(t, acceptChroma, acceptNone)
	if !ok {
		return zero, errSyntax{ErrInvalidArguments, f}
	}
	c = clampNonNegative(c)
	t, rest = step(rest)
	h, ok = acceptEither(t, acceptHueAngle, acceptNone)
	if !ok {
		return zero, errSyntax{ErrInvalidArguments, f}
	}
	alpha, ok = acceptSlashAlpha(rest)
	if !ok {
		return zero, errSyntax{ErrInvalidArguments, f}
	}
	return NewLabFamily(kind, l, c, h, alpha), nil
}

// acceptEitherNumOrPercent builds an acceptor for lab()/lch()'s a/b/chroma
// components: percentages scale to +-125 for Lab, +-0.4 for OKLab (100% ==
// that reference range); bare numbers pass through unscaled.
func acceptEitherNumOrPercent(legacyScale bool) func(t token.Token) (float64, bool) {
	refRange := 0.4
	if legacyScale {
		refRange = 125.0
	}
	return func(t token.Token) (float64, bool) {
		if t.Is(token.TypePercentage) {
			_, nv := t.NumericValue()
			return (nv / 100.0) * refRange, true
		}
		if t.Is(token.TypeNumber) {
			_, nv := t.NumericValue()
			return nv, true
		}
		return 0, false
	}
}

var predefinedSpaceByName = map[string]Kind{
	"srgb":         SRGB,
	"srgb-linear":  SRGBLinear,
	"display-p3":   DisplayP3,
	"a98-rgb":      A98RGB,
	"prophoto-rgb": ProPhoto,
	"rec2020":      Rec2020,
	"xyz-d50":      XYZD50,
	"xyz-d65":      XYZD65,
	"xyz":          XYZD65, // alias
}

func parseColorFunction(f token.Token, args []token.Token) (Color, error) {
	zero := Color{}
	t, rest := step(args)
	if !t.Is(token.TypeIdent) {
		return zero, errSyntax{ErrInvalidArguments, f}
	}
	kind, ok := predefinedSpaceByName[strings.ToLower(t.StringValue())]
	if !ok {
		return zero, errSyntax{ErrUnrecognisedColorSpace, f}
	}

	var c [3]float64
	for i := 0; i < 3; i++ {
		t, rest = step(rest)
		v, ok := acceptEither(t, acceptNumber, acceptPercentage, acceptNone)
		if !ok {
			return zero, errSyntax{ErrInvalidArguments, f}
		}
		c[i] = v
	}
	alpha, ok := acceptSlashAlpha(rest)
	if !ok {
		return zero, errSyntax{ErrInvalidArguments, f}
	}
	return NewPredefined(kind, c[0], c[1], c[2], alpha), nil
}

// parseColorMix parses color-mix(in <space> [<hue-method> hue]?, C1 [pct]?,
// C2 [pct]?) and returns the interpolated result.
func parseColorMix(f token.Token, args []token.Token) (Color, error) {
	zero := Color{}
	t, rest := step(args)
	if !(t.Is(token.TypeIdent) && strings.EqualFold(t.StringValue(), "in")) {
		return zero, errSyntax{ErrInvalidArguments, f}
	}
	t, rest = step(rest)
	if !t.Is(token.TypeIdent) {
		return zero, errSyntax{ErrInvalidArguments, f}
	}
	space, method, ok := parseMixSpace(t.StringValue())
	if !ok {
		return zero, errSyntax{ErrUnrecognisedColorSpace, f}
	}

	t, rest = step(rest)
	if t.Is(token.TypeIdent) { // optional hue interpolation method
		if hm, ok := hueMethodByName(t.StringValue()); ok {
			method = hm
			t, rest = step(rest) // consume "hue"
			t, rest = step(rest)
		}
	}
	if !t.Is(token.TypeComma) {
		return zero, errSyntax{ErrInvalidArguments, f}
	}

	c1, p1, rest, err := parseMixComponent(rest)
	if err != nil {
		return zero, err
	}
	t, rest = step(rest)
	if !t.Is(token.TypeComma) {
		return zero, errSyntax{ErrInvalidArguments, f}
	}
	c2, p2, rest, err := parseMixComponent(rest)
	if err != nil {
		return zero, err
	}
	if t, _ := step(rest); !t.Is(token.TypeEOF) {
		return zero, errSyntax{ErrUnexpectedTrailing, f}
	}

	if p1 < 0 && p2 < 0 {
		p1, p2 = 0.5, 0.5
	} else if p1 < 0 {
		p1 = 1 - p2
	} else if p2 < 0 {
		p2 = 1 - p1
	}

	return Interpolate(c1, c2, space, method, p1, p2)
}

func parseMixComponent(args []token.Token) (Color, float64, []token.Token, error) {
	// Collect tokens up to the next top-level comma or EOF, since a color
	// itself may be a nested function.
	depth := 0
	var sub []token.Token
	rest := args
	for {
		t, r := step(rest)
		if t.Is(token.TypeEOF) {
			rest = r
			break
		}
		if t.Is(token.TypeComma) && depth == 0 {
			break
		}
		if t.Is(token.TypeFunction) || t.Is(token.TypeLeftParen) {
			depth++
		}
		if t.Is(token.TypeRightParen) {
			depth--
		}
		sub = append(sub, t)
		rest = r
	}

	// Trailing percentage, if present, is the last token.
	pct := -1.0
	if n := len(sub); n > 0 && sub[n-1].Is(token.TypePercentage) {
		_, nv := sub[n-1].NumericValue()
		pct = nv / 100.0
		sub = sub[:n-1]
	}
	sub = append(sub, token.EOF())
	c, err := ParseColor(&sliceTokenizer{toks: sub})
	if err != nil {
		return Color{}, 0, rest, err
	}
	return c, pct, rest, nil
}

type sliceTokenizer struct {
	toks []token.Token
	pos  int
}

func (s *sliceTokenizer) Next() token.Token {
	if s.pos >= len(s.toks) {
		return token.EOF()
	}
	t := s.toks[s.pos]
	s.pos++
	return t
}

func parseMixSpace(name string) (Kind, HueMethod, bool) {
	switch strings.ToLower(name) {
	case "srgb":
		return FloatSRGB, HueShorter, true
	case "srgb-linear":
		return SRGBLinear, HueShorter, true
	case "display-p3":
		return DisplayP3, HueShorter, true
	case "a98-rgb":
		return A98RGB, HueShorter, true
	case "prophoto-rgb":
		return ProPhoto, HueShorter, true
	case "rec2020":
		return Rec2020, HueShorter, true
	case "xyz", "xyz-d65":
		return XYZD65, HueShorter, true
	case "xyz-d50":
		return XYZD50, HueShorter, true
	case "lab":
		return Lab, HueShorter, true
	case "lch":
		return LCH, HueShorter, true
	case "oklab":
		return OKLab, HueShorter, true
	case "oklch":
		return OKLCH, HueShorter, true
	case "hsl":
		return HSL, HueShorter, true
	case "hwb":
		return HWB, HueShorter, true
	default:
		return 0, 0, false
	}
}

func hueMethodByName(name string) (HueMethod, bool) {
	switch strings.ToLower(name) {
	case "shorter":
		return HueShorter, true
	case "longer":
		return HueLonger, true
	case "increasing":
		return HueIncreasing, true
	case "decreasing":
		return HueDecreasing, true
	case "specified":
		return HueSpecified, true
	default:
		return 0, false
	}
}
