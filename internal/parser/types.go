package parser

import (
	"cee/internal/ast"
	"cee/internal/diag"
	"cee/internal/source"
	"cee/internal/token"
)

// parseType dispatches on the leading token:
//
//	struct Name { fields }
//	trait Name
//	[func] (params) [<- Type]
//	Name
func (p *Parser) parseType() ast.Type {
	switch p.tok.Kind {
	case token.Struct:
		return p.parseStructType()
	case token.Trait:
		return p.parseTraitType()
	case token.Func, token.LParen:
		return p.parseFuncType()
	case token.Ident:
		return &ast.NamedType{Name: p.expectIdent()}
	default:
		bad := &ast.BadType{Pos: p.here()}
		p.reportAndRecover(diag.Unexpected(diag.SynExpectType, p.tok.Span, "type", p.tok.Describe()))
		return bad
	}
}

func (p *Parser) parseStructType() *ast.StructType {
	begin := p.matchTerm(token.Struct).Span
	st := &ast.StructType{Name: p.expectIdent()}
	p.matchTerm(token.LBrace)
	st.Fields = p.parseFieldList(token.Semicolon, token.RBrace)
	p.matchTerm(token.RBrace)
	st.Pos = p.spanFrom(begin)
	return st
}

func (p *Parser) parseTraitType() *ast.TraitType {
	begin := p.matchTerm(token.Trait).Span
	tt := &ast.TraitType{Name: p.expectIdent()}
	tt.Pos = p.spanFrom(begin)
	return tt
}

// parseFuncType parses a function type; the 'func' keyword is optional.
func (p *Parser) parseFuncType() *ast.FuncType {
	begin := p.tok.Span
	if p.at(token.Func) {
		p.advance()
	}
	return p.parseSignature(begin)
}

// parseSignature parses "(params) [<- Type]" shared by types and declarations.
func (p *Parser) parseSignature(begin source.Span) *ast.FuncType {
	ft := &ast.FuncType{}
	p.matchTerm(token.LParen)
	ft.Params = p.parseFieldList(token.Comma, token.RParen)
	p.matchTerm(token.RParen)
	if p.at(token.Pass) {
		p.advance()
		ft.Result = p.parseType()
	}
	ft.Pos = p.spanFrom(begin)
	return ft
}

func (p *Parser) parseFieldList(delim, term token.Kind) ast.FieldList {
	return parseList(p, p.parseField, delim, term)
}

// parseField parses "name Type".
func (p *Parser) parseField() *ast.Field {
	begin := p.tok.Span
	f := &ast.Field{Name: p.expectIdent()}
	if f.Name.IsMissing() {
		// уже восстановились; не плодим вторую ошибку про тип
		f.Type = &ast.BadType{Pos: p.here()}
	} else {
		f.Type = p.parseType()
	}
	f.Pos = p.spanFrom(begin)
	return f
}
