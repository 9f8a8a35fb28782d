package properties

import (
	"strconv"

	"github.com/tawesoft/cssbox/css/tokenizer/token"
	"github.com/tawesoft/cssbox/printer"
)

// valueSerializer is implemented by every concrete Property.Value type
// this module knows how to print: the border.Width/LineStyle/Triple/
// *Rect/*Pair family and css/color.Color. Kept private since it only
// exists to let DeclarationList.Serialize stay agnostic of border's
// concrete types without importing a package that itself imports this
// one.
type valueSerializer interface {
	Serialize(p printer.Printer) error
}

// serializeToken writes a single token in its original CSS form. It covers the
// token shapes that occur inside a border-family declaration's unparsed
// fallback (idents, functions such as var() and color-mix(), numbers,
// dimensions, hashes, strings, and punctuation) — not the full CSS token
// grammar, which this module never needs to round-trip.
func serializeToken(p printer.Printer, t token.Token) error {
	switch t.Type() {
	case token.TypeWhitespace:
		return p.WriteChar(' ')
	case token.TypeIdent:
		return p.WriteString(t.StringValue())
	case token.TypeFunction:
		return p.WriteString(t.StringValue() + "(")
	case token.TypeAtKeyword:
		return p.WriteString("@" + t.StringValue())
	case token.TypeString:
		return p.WriteString("\"" + t.StringValue() + "\"")
	case token.TypeUrl:
		return p.WriteString("url(" + t.StringValue() + ")")
	case token.TypeHash:
		return p.WriteString("#" + t.StringValue())
	case token.TypeDelim:
		return p.WriteChar(byte(t.Delim()))
	case token.TypeComma:
		return p.WriteChar(',')
	case token.TypeColon:
		return p.WriteChar(':')
	case token.TypeSemicolon:
		return p.WriteChar(';')
	case token.TypeLeftParen:
		return p.WriteChar('(')
	case token.TypeRightParen:
		return p.WriteChar(')')
	case token.TypeLeftSquareBracket:
		return p.WriteChar('[')
	case token.TypeRightSquareBracket:
		return p.WriteChar(']')
	case token.TypeLeftCurlyBracket:
		return p.WriteChar('{')
	case token.TypeRightCurlyBracket:
		return p.WriteChar('}')
	case token.TypeNumber:
		v, _ := t.NumericValue()
		return p.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	case token.TypePercentage:
		v, _ := t.NumericValue()
		return p.WriteString(strconv.FormatFloat(v, 'f', -1, 64) + "%")
	case token.TypeDimension:
		v, _ := t.NumericValue()
		return p.WriteString(strconv.FormatFloat(v, 'f', -1, 64) + t.Unit())
	default:
		return nil
	}
}

// Serialize writes u's preserved token run back out verbatim.
func (u *Unparsed) Serialize(p printer.Printer) error {
	for _, t := range u.Tokens {
		if err := serializeToken(p, t); err != nil {
			return err
		}
	}
	return nil
}

// Serialize writes a single declaration as "name: value" (without the
// trailing semicolon or !important marker, which DeclarationList.Serialize
// adds so one Property can also be reused standalone).
func (p Property) Serialize(out printer.Printer) error {
	name := p.ID
	if u, ok := p.Value.(*Unparsed); ok {
		name = u.ID
	}
	if err := out.WriteString(name.String()); err != nil {
		return err
	}
	if err := out.WriteChar(':'); err != nil {
		return err
	}
	if !out.Minify() {
		if err := out.WriteChar(' '); err != nil {
			return err
		}
	}
	if s, ok := p.Value.(valueSerializer); ok {
		return s.Serialize(out)
	}
	if toks, ok := p.Value.([]token.Token); ok {
		for _, t := range toks {
			if err := serializeToken(out, t); err != nil {
				return err
			}
		}
	}
	return nil
}

// Serialize writes every declaration in d, one per line, in order.
func (d *DeclarationList) Serialize(out printer.Printer) error {
	for _, decl := range d.Items {
		if err := decl.Property.Serialize(out); err != nil {
			return err
		}
		if decl.Important {
			if err := out.WriteString(" !important"); err != nil {
				return err
			}
		}
		if err := out.WriteChar(';'); err != nil {
			return err
		}
		if err := out.WriteChar('\n'); err != nil {
			return err
		}
	}
	return nil
}
