// Package length implements the small slice of CSS <length> this module
// needs: the explicit length a border-width longhand can carry (the
// "general <length>/<percentage> value model" is, like the full property
// enumeration, out of this module's scope per spec.md §1 — this is a
// narrowed stand-in, not a calc()-capable length engine).
package length

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tawesoft/cssbox/css/tokenizer/token"
	"github.com/tawesoft/cssbox/printer"
)

// Length is a single CSS dimension: a number plus one of the absolute or
// font-relative units border-width accepts.
type Length struct {
	Value float64
	Unit  string
}

// ErrInvalidLength is returned when a token is not a recognised <length>.
var ErrInvalidLength = fmt.Errorf("invalid length")

// knownUnits is the subset of CSS length units this module recognises on
// a border-width declaration.
var knownUnits = map[string]bool{
	"px": true, "em": true, "rem": true, "ex": true, "ch": true,
	"vw": true, "vh": true, "vmin": true, "vmax": true,
	"cm": true, "mm": true, "in": true, "pt": true, "pc": true, "q": true,
}

// Parse converts a dimension token into a Length. A zero-valued number
// token (unitless zero is valid everywhere a length is) is accepted as
// 0px.
func Parse(t token.Token) (Length, error) {
	switch t.Type() {
	case token.TypeDimension:
		v, _ := t.NumericValue()
		unit := strings.ToLower(t.Unit())
		if !knownUnits[unit] {
			return Length{}, ErrInvalidLength
		}
		return Length{Value: v, Unit: unit}, nil
	case token.TypeNumber:
		v, _ := t.NumericValue()
		if v != 0 {
			return Length{}, ErrInvalidLength
		}
		return Length{Value: 0, Unit: "px"}, nil
	default:
		return Length{}, ErrInvalidLength
	}
}

// Serialize writes l in its shortest acceptable CSS form.
func (l Length) Serialize(p printer.Printer) error {
	if l.Value == 0 {
		return p.WriteString("0")
	}
	s := strconv.FormatFloat(l.Value, 'f', -1, 64)
	return p.WriteString(s + l.Unit)
}

func (l Length) String() string {
	if l.Value == 0 {
		return "0"
	}
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + l.Unit
}
