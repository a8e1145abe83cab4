package parser

import (
	"cee/internal/ast"
	"cee/internal/diag"
	"cee/internal/token"
)

// parseList parses elem repeatedly, separated by delim and ended by term.
// term itself is left for the caller. A delim right before term is allowed,
// so "(a, b)" and "(a, b,)" give the same list. Any other token after an
// element is reported and the parser recovers to the enclosing closer.
func parseList[T ast.Node](p *Parser, elem func() T, delim, term token.Kind) ast.List[T] {
	begin := p.tok.Span
	var list ast.List[T]
	if p.at(term) {
		list.Pos = p.here()
		return list
	}

loop:
	for {
		list.Elements = append(list.Elements, elem())
		switch {
		case p.at(delim):
			p.advance()
			if p.at(term) {
				break loop
			}
		case p.at(term):
			break loop
		default:
			expected := delim.String() + " or " + term.String()
			p.reportAndRecover(diag.Unexpected(diag.SynUnexpectedToken, p.tok.Span, expected, p.tok.Describe()))
			break loop
		}
	}
	list.Pos = p.spanFrom(begin)
	return list
}
