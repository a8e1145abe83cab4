package token

import (
	"cee/internal/source"
)

// IntBase is the radix of an integer literal.
type IntBase uint8

const (
	Base2  IntBase = 2
	Base8  IntBase = 8
	Base10 IntBase = 10
	Base16 IntBase = 16
)

// Token represents a single refined token with its location.
type Token struct {
	Kind  Kind
	Base  IntBase // only for Int
	Span  source.Span
	Text  string
	Depth int // bracket depth before this token was scanned
}

// IsLiteral reports whether the token is a number, string or char literal.
func (t Token) IsLiteral() bool { return t.Kind.IsLiteral() }

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// Describe renders the token for "expected X, found Y" messages.
func (t Token) Describe() string {
	switch t.Kind {
	case Ident, Operator, Int, Float:
		return t.Kind.String() + " '" + t.Text + "'"
	case String, Char:
		return t.Kind.String() + " literal"
	case EOF:
		return "end of input"
	default:
		return t.Kind.String()
	}
}
