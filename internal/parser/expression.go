package parser

import (
	"cee/internal/ast"
	"cee/internal/diag"
	"cee/internal/token"
)

// parseExpr is the entry point of the Pratt parser.
func (p *Parser) parseExpr() ast.Expr {
	return p.parseBinaryExpr(precAssignment)
}

func (p *Parser) parseBinaryExpr(minPrec int) ast.Expr {
	left := p.parseUnaryExpr()
	for {
		prec, rightAssoc := binaryPrec(p.tok)
		if prec < minPrec {
			return left
		}
		op := p.advance()
		nextMin := prec + 1
		if rightAssoc {
			nextMin = prec
		}
		right := p.parseBinaryExpr(nextMin)
		left = &ast.BinaryExpr{Op: op, X: left, Y: right}
	}
}

func (p *Parser) parseUnaryExpr() ast.Expr {
	if !isUnaryOp(p.tok) {
		return p.parsePostfixExpr()
	}
	op := p.advance()
	x := p.parseUnaryExpr()
	return &ast.UnaryExpr{Pos: op.Span.Cover(x.Span()), Op: op, X: x}
}

// parsePostfixExpr handles calls, unwrap, selectors and indexing.
func (p *Parser) parsePostfixExpr() ast.Expr {
	x := p.parsePrimaryExpr()
	for {
		switch p.tok.Kind {
		case token.LParen:
			p.advance()
			args := parseList(p, p.parseExpr, token.Comma, token.RParen)
			p.matchTerm(token.RParen)
			x = &ast.CallExpr{Pos: p.spanFrom(x.Span()), Callee: x, Args: args}
		case token.Question:
			p.advance()
			x = &ast.UnwrapExpr{Pos: p.spanFrom(x.Span()), Inner: x}
		case token.Dot:
			p.advance()
			x = &ast.SelectorExpr{X: x, Sel: p.expectIdent()}
		case token.LBrack:
			p.advance()
			index := p.parseExpr()
			p.matchTerm(token.RBrack)
			x = &ast.IndexExpr{Pos: p.spanFrom(x.Span()), X: x, Index: index}
		default:
			return x
		}
	}
}

func (p *Parser) parsePrimaryExpr() ast.Expr {
	switch p.tok.Kind {
	case token.Ident:
		return p.expectIdent()
	case token.Int, token.Float, token.String, token.Char:
		return &ast.LiteralValue{Token: p.advance()}
	case token.LParen:
		open := p.advance()
		x := p.parseExpr()
		p.matchTerm(token.RParen)
		return &ast.ParenExpr{Pos: p.spanFrom(open.Span), X: x}
	default:
		bad := &ast.BadExpr{Pos: p.here()}
		p.reportAndRecover(diag.Unexpected(diag.SynExpectExpression, p.tok.Span, "expression", p.tok.Describe()))
		return bad
	}
}
