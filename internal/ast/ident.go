package ast

import (
	"cee/internal/source"
	"cee/internal/token"
)

// Ident is a name. A recovered, missing identifier has an empty Token.Text.
type Ident struct {
	Token token.Token
}

func (x *Ident) Span() source.Span { return x.Token.Span }

// Name returns the identifier text.
func (x *Ident) Name() string { return x.Token.Text }

// IsMissing reports whether the identifier was synthesised during recovery.
func (x *Ident) IsMissing() bool { return x.Token.Kind != token.Ident }

// Field is a name and its type, as in struct bodies and parameter lists.
type Field struct {
	Pos  source.Span
	Name *Ident
	Type Type
}

func (x *Field) Span() source.Span { return x.Pos }

// FieldList is a list of fields.
type FieldList = List[*Field]
