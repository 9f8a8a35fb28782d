package border

import (
	"strings"

	"github.com/tawesoft/cssbox/css/tokenizer/token"
	"github.com/tawesoft/cssbox/printer"
)

// LineStyle is the <line-style> keyword set used by border-*-style.
type LineStyle uint8

const (
	None LineStyle = iota
	Hidden
	Inset
	Groove
	Outset
	Ridge
	Dotted
	Dashed
	Solid
	Double
)

// DefaultStyle is the initial value of every border-*-style longhand.
const DefaultStyle = None

var lineStyleNames = [...]string{
	None: "none", Hidden: "hidden", Inset: "inset", Groove: "groove",
	Outset: "outset", Ridge: "ridge", Dotted: "dotted", Dashed: "dashed",
	Solid: "solid", Double: "double",
}

var lineStyleKeywords = func() map[string]LineStyle {
	m := make(map[string]LineStyle, len(lineStyleNames))
	for i, name := range lineStyleNames {
		m[name] = LineStyle(i)
	}
	return m
}()

// ParseLineStyle parses a single <line-style> ident token.
func ParseLineStyle(t token.Token) (LineStyle, error) {
	if !t.Is(token.TypeIdent) {
		return 0, errInvalidStyle
	}
	if s, ok := lineStyleKeywords[strings.ToLower(t.StringValue())]; ok {
		return s, nil
	}
	return 0, errInvalidStyle
}

// Serialize writes s in its CSS form.
func (s LineStyle) Serialize(p printer.Printer) error {
	return p.WriteString(s.String())
}

func (s LineStyle) String() string {
	if int(s) < len(lineStyleNames) {
		return lineStyleNames[s]
	}
	return "none"
}
