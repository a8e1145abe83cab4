package parser

import (
	"cee/internal/ast"
	"cee/internal/diag"
	"cee/internal/lexer"
	"cee/internal/source"
	"cee/internal/token"
)

// next pulls a token from the lexer. After a lexical error the parser sees
// EOF forever and the error is kept in p.fatal.
func (p *Parser) next() {
	if p.fatal != nil {
		return
	}
	tok, err := p.lx.Scan()
	if err != nil {
		p.fail(err)
		return
	}
	p.tok = tok
}

func (p *Parser) fail(err error) {
	if p.fatal == nil {
		p.fatal = err
	}
	p.tok = token.Token{Kind: token.EOF, Span: source.At(p.file.ID, p.tok.Span.End)}
}

// advance — съедает текущий токен и возвращает его
func (p *Parser) advance() token.Token {
	tok := p.tok
	if tok.Kind != token.EOF {
		p.lastEnd = tok.Span.End
	}
	p.next()
	return tok
}

// matchTerm consumes the current token whatever it is and reports a mismatch
// with k. It never recovers.
func (p *Parser) matchTerm(k token.Kind) token.Token {
	tok := p.advance()
	if tok.Kind != k {
		p.report(diag.Unexpected(diag.SynUnexpectedToken, tok.Span, k.String(), tok.Describe()))
	}
	return tok
}

// expectIdent returns the current identifier or, on mismatch, reports,
// recovers and returns a missing identifier placed at the offending token.
func (p *Parser) expectIdent() *ast.Ident {
	if p.at(token.Ident) {
		return &ast.Ident{Token: p.advance()}
	}
	missing := &ast.Ident{Token: token.Token{Kind: token.None, Span: source.At(p.file.ID, p.tok.Span.Begin)}}
	p.reportAndRecover(diag.Unexpected(diag.SynExpectIdentifier, p.tok.Span, "identifier", p.tok.Describe()))
	return missing
}

// unexpected reports the current token against a description of what was expected.
func (p *Parser) unexpected(code diag.Code, expected string) {
	p.report(diag.Unexpected(code, p.tok.Span, expected, p.tok.Describe()))
}

// reportAndRecover records d and skips to the closer of the innermost open
// bracket. Outside brackets it only records. Running out of input while
// skipping is a lexical error.
func (p *Parser) reportAndRecover(d diag.Diagnostic) {
	p.report(d)
	level := p.tok.Depth
	if level == 0 {
		return
	}
	for !(p.tok.Kind.IsCloser() && p.tok.Depth == level) {
		if p.at(token.EOF) {
			p.fail(&lexer.EOFError{Pos: p.tok.Span.Begin})
			return
		}
		p.advance()
	}
}

// report sends d to the reporter, honouring MaxErrors. Nothing is reported
// once a lexical error has stopped the parse, and an error starting where the
// previous one did is dropped: one stray token gets one error.
func (p *Parser) report(d diag.Diagnostic) bool {
	if p.fatal != nil || p.opts.Reporter == nil {
		return false
	}
	if d.Severity == diag.SevError {
		if p.errSeen && p.errAt.File == d.Primary.File && p.errAt.Begin.Offset == d.Primary.Begin.Offset {
			return false
		}
		if p.opts.Enough() {
			return false // достигли максимального количества ошибок
		}
		p.opts.CurrentErrors++
		p.errAt, p.errSeen = d.Primary, true
	}
	p.opts.Reporter.Report(d)
	return true
}

// spanFrom returns the span from begin to the end of the last consumed token.
func (p *Parser) spanFrom(begin source.Span) source.Span {
	sp := source.Span{File: p.file.ID, Begin: begin.Begin, End: p.lastEnd}
	if sp.End.Offset < sp.Begin.Offset {
		sp.End = sp.Begin
	}
	return sp
}

// here is an empty span at the current token.
func (p *Parser) here() source.Span {
	return source.At(p.file.ID, p.tok.Span.Begin)
}
