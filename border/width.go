package border

import (
	"strings"

	"github.com/tawesoft/cssbox/css/tokenizer/token"
	"github.com/tawesoft/cssbox/printer"
	"github.com/tawesoft/cssbox/values/length"
)

// WidthKeyword discriminates the three UA-defined border-width keywords
// from an explicit Length.
type WidthKeyword uint8

const (
	Thin WidthKeyword = iota
	Medium
	Thick
	WidthIsLength
)

// Width is a value for the border-*-width longhands: one of the three
// keywords, or an explicit Length.
type Width struct {
	Keyword WidthKeyword
	Length  length.Length // valid iff Keyword == WidthIsLength
}

// DefaultWidth is the initial value of every border-*-width longhand.
var DefaultWidth = Width{Keyword: Medium}

// ParseWidth parses a single border-side-width token.
func ParseWidth(t token.Token) (Width, error) {
	if l, err := length.Parse(t); err == nil {
		return Width{Keyword: WidthIsLength, Length: l}, nil
	}
	if !t.Is(token.TypeIdent) {
		return Width{}, errInvalidWidth
	}
	switch strings.ToLower(t.StringValue()) {
	case "thin":
		return Width{Keyword: Thin}, nil
	case "medium":
		return Width{Keyword: Medium}, nil
	case "thick":
		return Width{Keyword: Thick}, nil
	default:
		return Width{}, errInvalidWidth
	}
}

// Serialize writes w in its CSS form.
func (w Width) Serialize(p printer.Printer) error {
	switch w.Keyword {
	case Thin:
		return p.WriteString("thin")
	case Medium:
		return p.WriteString("medium")
	case Thick:
		return p.WriteString("thick")
	default:
		return w.Length.Serialize(p)
	}
}

func (w Width) String() string {
	switch w.Keyword {
	case Thin:
		return "thin"
	case Medium:
		return "medium"
	case Thick:
		return "thick"
	default:
		return w.Length.String()
	}
}
