package ast

import (
	"cee/internal/source"
	"cee/internal/token"
)

type (
	// MutDecl declares a local: "mut name Type = value" or "val name Type = value".
	MutDecl struct {
		Pos     source.Span
		Mutable bool
		Name    *Ident
		Type    Type
		Value   Expr // nil without initializer
	}

	// StmtBlock is a ';'-separated statement list.
	StmtBlock struct {
		Stmts List[Stmt]
	}

	// ExprStmt is an expression evaluated for its effect.
	ExprStmt struct {
		X Expr
	}

	// ReturnStmt is "return [result]".
	ReturnStmt struct {
		Pos    source.Span
		Result Expr
	}

	// BranchStmt is "break" or "continue".
	BranchStmt struct {
		Tok token.Token
	}
)

func (x *MutDecl) Span() source.Span    { return x.Pos }
func (x *StmtBlock) Span() source.Span  { return x.Stmts.Span() }
func (x *ExprStmt) Span() source.Span   { return x.X.Span() }
func (x *ReturnStmt) Span() source.Span { return x.Pos }
func (x *BranchStmt) Span() source.Span { return x.Tok.Span }

func (*MutDecl) stmtNode()    {}
func (*StmtBlock) stmtNode()  {}
func (*ExprStmt) stmtNode()   {}
func (*ReturnStmt) stmtNode() {}
func (*BranchStmt) stmtNode() {}
