package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tawesoft/cssbox/compat"
	"github.com/tawesoft/cssbox/printer"
)

// compactHex turns a byte into a single nibble if both halves match (e.g.
// 0x11 -> 0x1), or reports ok=false otherwise.
func compactHex(v uint8) (nibble uint8, ok bool) {
	hi, lo := v>>4, v&0xF
	return hi, hi == lo
}

// expandHex is the inverse of compactHex: 0x1 -> 0x11.
func expandHex(nibble uint8) uint8 {
	return nibble<<4 | nibble
}

func fmtFloatTrim(f float64, prec int) string {
	s := strconv.FormatFloat(f, 'f', prec, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimRight(s, ".")
	}
	return s
}

// shortestRGBForm returns the shortest of a named color, 3-digit hex,
// 6-digit hex, for an opaque RGB triple.
func shortestRGBForm(r, g, b uint8) string {
	name, hasName := namedColors[[3]uint8{r, g, b}]

	rn, rok := compactHex(r)
	gn, gok := compactHex(g)
	bn, bok := compactHex(b)
	var hex string
	if rok && gok && bok {
		hex = fmt.Sprintf("#%x%x%x", rn, gn, bn)
	} else {
		hex = fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}

	if hasName && len(name) < len(hex) {
		return name
	}
	return hex
}

// Serialize writes c to p in its shortest acceptable form for p's active
// target browsers, per spec §4.1's Serialize operation.
func (c Color) Serialize(p printer.Printer) error {
	switch c.Kind {
	case CurrentColor:
		return p.WriteString("currentcolor")
	case RGBA:
		return serializeRGBA(p, c.R, c.G, c.B, c.A)
	case FloatSRGB:
		if !hasNaN(c.C) && !math.IsNaN(c.Alpha) {
			rgba, err := c.Convert(RGBA)
			if err != nil {
				return err
			}
			return rgba.Serialize(p)
		}
		return serializeModernFunction(p, "rgb", []component{
			{c.C[0] * 255, false}, {c.C[1] * 255, false}, {c.C[2] * 255, false},
		}, c.Alpha)
	case Lab, LCH, OKLab, OKLCH:
		return serializeLabFamily(p, c)
	case HSL:
		return serializeModernFunction(p, "hsl", []component{
			{c.C[0], false}, {c.C[1] * 100, true}, {c.C[2] * 100, true},
		}, c.Alpha)
	case HWB:
		return serializeModernFunction(p, "hwb", []component{
			{c.C[0], false}, {c.C[1] * 100, true}, {c.C[2] * 100, true},
		}, c.Alpha)
	default:
		return serializePredefined(p, c)
	}
}

func hasNaN(c [3]float64) bool {
	return math.IsNaN(c[0]) || math.IsNaN(c[1]) || math.IsNaN(c[2])
}

func serializeRGBA(p printer.Printer, r, g, b, a uint8) error {
	if a == 255 {
		return p.WriteString(shortestRGBForm(r, g, b))
	}

	targets := p.Targets()
	supportsHexAlpha := targets == nil || compat.CssRrggbbaa.IsCompatible(*targets)
	if supportsHexAlpha {
		rn, rok := compactHex(r)
		gn, gok := compactHex(g)
		bn, bok := compactHex(b)
		an, aok := compactHex(a)
		if rok && gok && bok && aok {
			return p.WriteString(fmt.Sprintf("#%x%x%x%x", rn, gn, bn, an))
		}
		return p.WriteString(fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a))
	}

	alpha := float64(a) / 255.0
	alphaStr := fmtFloatTrim(alpha, 2)
	if v, err := strconv.ParseFloat(alphaStr, 64); err != nil || uint8(math.Round(v*255)) != a {
		alphaStr = fmtFloatTrim(alpha, 3)
	}
	sep := ", "
	if p.Minify() {
		sep = ","
	}
	return p.WriteString(fmt.Sprintf("rgba(%d%s%d%s%d%s%s)", r, sep, g, sep, b, sep, alphaStr))
}

type component struct {
	value   float64
	percent bool
}

func formatComponent(c component) string {
	if math.IsNaN(c.value) {
		return "none"
	}
	if c.percent {
		return fmtFloatTrim(c.value, 4) + "%"
	}
	return fmtFloatTrim(c.value, 4)
}

func serializeModernFunction(p printer.Printer, name string, comps []component, alpha float64) error {
	if err := p.WriteString(name); err != nil {
		return err
	}
	if err := p.WriteChar('('); err != nil {
		return err
	}
	for i, c := range comps {
		if i > 0 {
			if err := p.WriteChar(' '); err != nil {
				return err
			}
		}
		if err := p.WriteString(formatComponent(c)); err != nil {
			return err
		}
	}
	if !roughlyEqual(resolveMissing(alpha), 1.0) || math.IsNaN(alpha) {
		if err := p.Delim('/', true); err != nil {
			return err
		}
		if err := p.WriteString(formatComponent(component{alpha, false})); err != nil {
			return err
		}
	}
	return p.WriteChar(')')
}

func serializeLabFamily(p printer.Printer, c Color) error {
	var name string
	var lPercent bool
	l := c.C[0]
	switch c.Kind {
	case Lab, OKLab:
		if c.Kind == Lab {
			name = "lab"
		} else {
			name = "oklab"
		}
	case LCH, OKLCH:
		if c.Kind == LCH {
			name = "lch"
		} else {
			name = "oklch"
		}
	}
	lPercent = true
	l100 := l * 100
	return serializeModernFunction(p, name, []component{
		{l100, lPercent}, {c.C[1], false}, {c.C[2], false},
	}, c.Alpha)
}

var spaceCSSNames = map[Kind]string{
	SRGB: "srgb", SRGBLinear: "srgb-linear", DisplayP3: "display-p3",
	A98RGB: "a98-rgb", ProPhoto: "prophoto-rgb", Rec2020: "rec2020",
	XYZD50: "xyz-d50", XYZD65: "xyz",
}

func serializePredefined(p printer.Printer, c Color) error {
	name := spaceCSSNames[c.Kind]
	if err := p.WriteString("color("); err != nil {
		return err
	}
	if err := p.WriteString(name); err != nil {
		return err
	}
	for _, v := range c.C {
		if err := p.WriteChar(' '); err != nil {
			return err
		}
		if p.Minify() && !math.IsNaN(v) && v == 0 {
			if err := p.WriteChar('0'); err != nil {
				return err
			}
			continue
		}
		if err := p.WriteString(formatComponent(component{v, false})); err != nil {
			return err
		}
	}
	if !roughlyEqual(resolveMissing(c.Alpha), 1.0) || math.IsNaN(c.Alpha) {
		if err := p.Delim('/', true); err != nil {
			return err
		}
		if err := p.WriteString(formatComponent(component{c.Alpha, false})); err != nil {
			return err
		}
	}
	return p.WriteChar(')')
}

// String returns c's shortest serialization with no specific browser
// targets and no minification, for debugging and test-assertion purposes.
func (c Color) String() string {
	var sb strings.Builder
	p := printer.New(&sb, false, nil)
	_ = c.Serialize(p)
	_ = p.Flush()
	return sb.String()
}
