package parser

import (
	"cee/internal/ast"
	"cee/internal/diag"
	"cee/internal/token"
)

// parseImportDecl parses `import [alias] "path"` and binds the namespace name.
func (p *Parser) parseImportDecl() *ast.ImportDecl {
	begin := p.matchTerm(token.Import).Span
	decl := &ast.ImportDecl{}
	if p.at(token.Ident) {
		decl.Alias = p.expectIdent()
	}
	if !p.at(token.String) {
		p.reportAndRecover(diag.Unexpected(diag.SynExpectImportPath, p.tok.Span, "import path", p.tok.Describe()))
		decl.Pos = p.spanFrom(begin)
		return decl
	}
	decl.Canonical = p.advance()
	decl.Pos = p.spanFrom(begin)
	p.bindNamespace(decl)
	return decl
}

func (p *Parser) bindNamespace(decl *ast.ImportDecl) {
	name := decl.Name()
	if prev, ok := p.namespaces[name]; ok {
		diag.ReportWarning(p.opts.Reporter, diag.SynDuplicateImport, decl.Pos, "import name '"+name+"' is already bound").
			WithNote(prev.Pos, "previous import here").
			WithFix("remove duplicate import", diag.FixEdit{Span: decl.Pos}).
			Emit()
		return
	}
	p.namespaces[name] = decl
}

// parseFuncDecl parses "func name(params) [<- Type] [{ body }]".
func (p *Parser) parseFuncDecl() *ast.FuncDecl {
	begin := p.matchTerm(token.Func).Span
	fn := &ast.FuncDecl{Name: p.expectIdent()}
	fn.Type = p.parseSignature(p.tok.Span)
	if p.at(token.LBrace) {
		fn.Body = p.parseBlock()
	}
	fn.Pos = p.spanFrom(begin)
	return fn
}
