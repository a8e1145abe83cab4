package ast

import (
	"cee/internal/source"
)

type (
	// FuncType is "(params) <- result"; Result is nil without an arrow.
	FuncType struct {
		Pos    source.Span
		Params FieldList
		Result Type
	}

	// StructType is "struct Name { fields }".
	StructType struct {
		Pos    source.Span
		Name   *Ident
		Fields FieldList
	}

	// TraitType is "trait Name".
	TraitType struct {
		Pos  source.Span
		Name *Ident
	}

	// NamedType refers to a type by name.
	NamedType struct {
		Name *Ident
	}

	// BadType stands in for a type that could not be parsed.
	BadType struct {
		Pos source.Span
	}
)

func (x *FuncType) Span() source.Span   { return x.Pos }
func (x *StructType) Span() source.Span { return x.Pos }
func (x *TraitType) Span() source.Span  { return x.Pos }
func (x *NamedType) Span() source.Span  { return x.Name.Span() }
func (x *BadType) Span() source.Span    { return x.Pos }

func (*FuncType) typeNode()   {}
func (*StructType) typeNode() {}
func (*TraitType) typeNode()  {}
func (*NamedType) typeNode()  {}
func (*BadType) typeNode()    {}
