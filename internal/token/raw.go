package token

import "cee/internal/source"

// RawKind is the coarse class assigned by the scanner before refinement.
type RawKind uint8

const (
	RawIdent RawKind = iota
	RawOperator
	RawInt
	RawFloat
	RawString
	RawChar
	RawDelimiter
	RawComment
)

var rawKindNames = [...]string{
	RawIdent:     "Ident",
	RawOperator:  "Operator",
	RawInt:       "Int",
	RawFloat:     "Float",
	RawString:    "String",
	RawChar:      "Char",
	RawDelimiter: "Delimiter",
	RawComment:   "Comment",
}

func (k RawKind) String() string {
	if int(k) < len(rawKindNames) {
		return rawKindNames[k]
	}
	return "RawKind(?)"
}

// RawToken is one classified lexeme straight from the scanner.
// For strings and chars Text holds the decoded value; for integers it holds
// the digits without the base prefix.
type RawToken struct {
	Span source.Span
	Kind RawKind
	Base IntBase
	Text string
}
