package ast

import (
	"path"

	"cee/internal/source"
	"cee/internal/token"
)

type (
	// ImportDecl is `import [alias] "canonical/path"`.
	ImportDecl struct {
		Pos       source.Span
		Alias     *Ident // nil without alias
		Canonical token.Token
	}

	// FuncDecl is "func name(params) [<- result] [{ body }]".
	FuncDecl struct {
		Pos  source.Span
		Name *Ident
		Type *FuncType
		Body *StmtBlock // nil for a declaration without body
	}

	// TypeDecl is a struct or trait declared at top level.
	TypeDecl struct {
		Type Type
	}
)

func (x *ImportDecl) Span() source.Span { return x.Pos }
func (x *FuncDecl) Span() source.Span   { return x.Pos }
func (x *TypeDecl) Span() source.Span   { return x.Type.Span() }

func (*ImportDecl) declNode() {}
func (*FuncDecl) declNode()   {}
func (*TypeDecl) declNode()   {}

// Name returns the namespace name the import binds: the alias if present,
// otherwise the last path segment.
func (x *ImportDecl) Name() string {
	if x.Alias != nil && !x.Alias.IsMissing() {
		return x.Alias.Name()
	}
	return path.Base(x.Canonical.Text)
}

// File is the root of one parsed source file.
type File struct {
	Pos   source.Span
	Decls []Decl
}

func (x *File) Span() source.Span { return x.Pos }
