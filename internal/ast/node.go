// Package ast defines the syntax tree built by the parser.
//
// Every node family is a closed sum type: an interface with an unexported
// marker method, implemented only by the pointer types in this package.
// Consumers switch over the concrete types; Walk shows the full set.
// Optional children are nil. The tree is strict: no node is shared.
package ast

import (
	"cee/internal/source"
)

// Node is implemented by every syntax tree node.
type Node interface {
	Span() source.Span
}

// Type is a type expression: *FuncType, *StructType, *TraitType,
// *NamedType or *BadType.
type Type interface {
	Node
	typeNode()
}

// Expr is an expression: *LiteralValue, *Ident, *CallExpr, *UnwrapExpr,
// *ParenExpr, *UnaryExpr, *BinaryExpr, *SelectorExpr, *IndexExpr or *BadExpr.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a statement: *MutDecl, *StmtBlock, *ExprStmt, *ReturnStmt or *BranchStmt.
type Stmt interface {
	Node
	stmtNode()
}

// Decl is a top-level declaration: *ImportDecl, *FuncDecl or *TypeDecl.
type Decl interface {
	Node
	declNode()
}

// List is an ordered sequence of nodes sharing one span.
type List[T Node] struct {
	Pos      source.Span
	Elements []T
}

func (l List[T]) Span() source.Span { return l.Pos }

// Len returns the number of elements.
func (l List[T]) Len() int { return len(l.Elements) }
