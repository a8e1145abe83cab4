package parser

import (
	"cee/internal/ast"
	"cee/internal/token"
)

// parseBlock parses "{ stmts }".
func (p *Parser) parseBlock() *ast.StmtBlock {
	open := p.matchTerm(token.LBrace)
	block := p.parseStmtBlock(token.RBrace)
	p.matchTerm(token.RBrace)
	block.Stmts.Pos = p.spanFrom(open.Span)
	return block
}

// parseStmtBlock parses a ';'-separated statement list up to term, which
// belongs to the caller.
func (p *Parser) parseStmtBlock(term token.Kind) *ast.StmtBlock {
	return &ast.StmtBlock{Stmts: parseList(p, p.parseStmt, token.Semicolon, term)}
}

func (p *Parser) parseStmt() ast.Stmt {
	switch p.tok.Kind {
	case token.Mut, token.Val:
		return p.parseMutDecl()
	case token.LBrace:
		return p.parseBlock()
	case token.Return:
		return p.parseReturn()
	case token.Break, token.Continue:
		return &ast.BranchStmt{Tok: p.advance()}
	default:
		return &ast.ExprStmt{X: p.parseExpr()}
	}
}

// parseMutDecl parses "mut name Type [= value]" and "val name Type [= value]".
func (p *Parser) parseMutDecl() *ast.MutDecl {
	kw := p.advance()
	decl := &ast.MutDecl{Mutable: kw.Kind == token.Mut, Name: p.expectIdent()}
	if decl.Name.IsMissing() {
		decl.Type = &ast.BadType{Pos: p.here()}
	} else {
		decl.Type = p.parseType()
	}
	if p.at(token.Assign) {
		p.advance()
		decl.Value = p.parseExpr()
	}
	decl.Pos = p.spanFrom(kw.Span)
	return decl
}

func (p *Parser) parseReturn() *ast.ReturnStmt {
	kw := p.matchTerm(token.Return)
	ret := &ast.ReturnStmt{}
	if !p.atOr(token.Semicolon, token.RBrace, token.EOF) {
		ret.Result = p.parseExpr()
	}
	ret.Pos = p.spanFrom(kw.Span)
	return ret
}
