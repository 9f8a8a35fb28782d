package tokenizer

import (
    "github.com/tawesoft/cssbox/css/tokenizer/token"
)

// ToToken converts a low-level Token produced directly by the tokenizer's
// state machine into the package token's portable representation, which is
// what every consumer outside this package (parsers, color, border) is
// written against.
func (t Token) ToToken() token.Token {
    switch t.Type {
    case TokenTypeWhitespace:
        return token.Whitespace()
    case TokenTypeEOF:
        return token.EOF()
    case TokenTypeString:
        return token.String(t.stringValue)
    case TokenTypeBadString:
        return token.BadString()
    case TokenTypeDelim:
        if t.delim == ',' {
            return token.Comma()
        }
        return token.Delim(t.delim)
    case TokenTypeHash:
        return token.Hash(token.HashType(t.hashType), t.stringValue)
    case TokenTypeLeftParen:
        return token.LeftParen()
    case TokenTypeRightParen:
        return token.RightParen()
    case TokenTypeNumber:
        return token.Number(token.NumberType(t.numberType), t.repr, t.numberValue)
    case TokenTypeDimension:
        return token.Dimension(token.NumberType(t.numberType), t.repr, t.numberValue, t.unit)
    case TokenTypePercentage:
        return token.Percentage(token.NumberType(t.numberType), t.repr, t.numberValue)
    case TokenTypeCDC:
        return token.CDC()
    case TokenTypeIdent:
        return token.Ident(t.stringValue)
    case TokenTypeFunction:
        return token.Function(t.stringValue)
    case TokenTypeUrl:
        return token.Url(t.stringValue)
    case TokenTypeBadUrl:
        return token.BadUrl()
    case TokenTypeColon:
        return token.Colon()
    case TokenTypeSemicolon:
        return token.Semicolon()
    case TokenTypeCDO:
        return token.CDO()
    case TokenTypeAtKeyword:
        return token.AtKeyword(t.stringValue)
    case TokenTypeLeftSquareBracket:
        return token.LeftSquareBracket()
    case TokenTypeRightSquareBracket:
        return token.RightSquareBracket()
    case TokenTypeLeftCurlyBracket:
        return token.LeftCurlyBracket()
    case TokenTypeRightCurlyBracket:
        return token.RightCurlyBracket()
    default:
        return token.EOF()
    }
}

// NextToken is like Next, but returns the portable token representation
// instead of the tokenizer's own internal Token type. Parse errors are
// still recorded internally and available from Errors.
func (z *Tokenizer) NextToken() token.Token {
    t, _ := z.Next()
    return t.ToToken()
}
