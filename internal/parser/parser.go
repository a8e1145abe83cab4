package parser

import (
	"slices"

	"cee/internal/ast"
	"cee/internal/diag"
	"cee/internal/lexer"
	"cee/internal/source"
	"cee/internal/token"
)

// DefaultMaxErrors caps the diagnostics bag when the caller supplies no reporter.
const DefaultMaxErrors = 100

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter // nil — парсер заводит свой Bag
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Result of parsing one file. File is nil when parsing stopped on a lexical error.
type Result struct {
	File       *ast.File
	Bag        *diag.Bag // nil when a custom Reporter was supplied
	Namespaces map[string]*ast.ImportDecl
}

// Parser — состояние парсера на один файл
type Parser struct {
	lx      *lexer.Lexer
	file    *source.File
	tok     token.Token     // current token
	lastEnd source.Position // end of the last consumed token
	opts    Options
	bag     *diag.Bag
	fatal   error
	errAt   source.Span // primary span of the last reported error
	errSeen bool

	namespaces map[string]*ast.ImportDecl
}

// New creates a parser and pulls the first token.
func New(file *source.File, lx *lexer.Lexer, opts Options) *Parser {
	p := &Parser{
		lx:         lx,
		file:       file,
		opts:       opts,
		namespaces: make(map[string]*ast.ImportDecl),
	}
	if p.opts.Reporter == nil {
		limit := p.opts.MaxErrors
		if limit == 0 {
			limit = DefaultMaxErrors
		}
		p.bag = diag.NewBag(int(limit)) // #nosec G115 -- bounded by caller config
		p.opts.Reporter = diag.BagReporter{Bag: p.bag}
	}
	p.tok = token.Token{Kind: token.None, Span: source.At(file.ID, source.Position{})}
	p.next()
	return p
}

// ParseFile parses a whole file with a fresh lexer.
// A lexical error ends parsing: it is returned together with the diagnostics
// collected so far and no tree.
func ParseFile(file *source.File, opts Options) (Result, error) {
	return New(file, lexer.New(file), opts).Parse()
}

// Parse runs the top-level production.
func (p *Parser) Parse() (Result, error) {
	f := p.parseFile()
	res := Result{Bag: p.bag, Namespaces: p.namespaces}
	if p.fatal != nil {
		return res, p.fatal
	}
	res.File = f
	return res, nil
}

func (p *Parser) at(k token.Kind) bool {
	return p.tok.Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.tok.Kind)
}

// parseFile — основной цикл верхнего уровня: пока не EOF — parseDecl.
func (p *Parser) parseFile() *ast.File {
	f := &ast.File{}
	for !p.at(token.EOF) {
		if p.at(token.Semicolon) {
			p.advance()
			continue
		}
		errs := p.opts.CurrentErrors
		decl, ok := p.parseDecl()
		if !ok {
			p.resyncTop()
			continue
		}
		f.Decls = append(f.Decls, decl)
		if !p.atOr(token.Semicolon, token.EOF) {
			if p.opts.CurrentErrors == errs { // иначе это хвост уже отрепорченной ошибки
				p.report(diag.Unexpected(diag.SynUnexpectedToken, p.tok.Span, "';' or newline", p.tok.Describe()).
					WithFix("start the declaration on a new line", diag.FixEdit{Span: p.here(), NewText: "\n"}))
			}
			p.resyncTop()
		}
	}
	f.Pos = source.Span{File: p.file.ID, End: p.tok.Span.End}
	return f
}

// parseDecl выбирает по первому токену нужный распознаватель top-level конструкции.
func (p *Parser) parseDecl() (ast.Decl, bool) {
	switch p.tok.Kind {
	case token.Import:
		return p.parseImportDecl(), true
	case token.Func:
		return p.parseFuncDecl(), true
	case token.Struct, token.Trait:
		return &ast.TypeDecl{Type: p.parseType()}, true
	default:
		p.unexpected(diag.SynUnexpectedTopLevel, "declaration")
		return nil, false
	}
}

// resyncTop — восстановление после ошибки на верхнем уровне:
// прокручиваем до ';' ИЛИ до стартового токена следующей декларации ИЛИ EOF.
func (p *Parser) resyncTop() {
	for !p.atOr(token.Semicolon, token.EOF) && !isTopLevelStarter(p.tok.Kind) {
		p.advance()
	}
	if p.at(token.Semicolon) {
		p.advance()
	}
}

func isTopLevelStarter(k token.Kind) bool {
	switch k {
	case token.Import, token.Func, token.Struct, token.Trait:
		return true
	default:
		return false
	}
}
