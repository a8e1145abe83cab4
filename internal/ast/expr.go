package ast

import (
	"cee/internal/source"
	"cee/internal/token"
)

type (
	// LiteralValue is a number, string or char literal.
	LiteralValue struct {
		Token token.Token
	}

	// CallExpr is "callee(args)".
	CallExpr struct {
		Pos    source.Span
		Callee Expr
		Args   List[Expr]
	}

	// UnwrapExpr is the postfix "inner?".
	UnwrapExpr struct {
		Pos   source.Span
		Inner Expr
	}

	// ParenExpr is "(x)".
	ParenExpr struct {
		Pos source.Span
		X   Expr
	}

	// UnaryExpr is a prefix operator applied to X.
	UnaryExpr struct {
		Pos source.Span
		Op  token.Token
		X   Expr
	}

	// BinaryExpr is "X op Y".
	BinaryExpr struct {
		Op   token.Token
		X, Y Expr
	}

	// SelectorExpr is "X.Sel".
	SelectorExpr struct {
		X   Expr
		Sel *Ident
	}

	// IndexExpr is "X[Index]".
	IndexExpr struct {
		Pos   source.Span
		X     Expr
		Index Expr
	}

	// BadExpr stands in for an expression that could not be parsed.
	BadExpr struct {
		Pos source.Span
	}
)

func (x *LiteralValue) Span() source.Span { return x.Token.Span }
func (x *CallExpr) Span() source.Span     { return x.Pos }
func (x *UnwrapExpr) Span() source.Span   { return x.Pos }
func (x *ParenExpr) Span() source.Span    { return x.Pos }
func (x *UnaryExpr) Span() source.Span    { return x.Pos }
func (x *BinaryExpr) Span() source.Span   { return x.X.Span().Cover(x.Y.Span()) }
func (x *SelectorExpr) Span() source.Span { return x.X.Span().Cover(x.Sel.Span()) }
func (x *IndexExpr) Span() source.Span    { return x.Pos }
func (x *BadExpr) Span() source.Span      { return x.Pos }

func (*LiteralValue) exprNode() {}
func (*Ident) exprNode()        {}
func (*CallExpr) exprNode()     {}
func (*UnwrapExpr) exprNode()   {}
func (*ParenExpr) exprNode()    {}
func (*UnaryExpr) exprNode()    {}
func (*BinaryExpr) exprNode()   {}
func (*SelectorExpr) exprNode() {}
func (*IndexExpr) exprNode()    {}
func (*BadExpr) exprNode()      {}
