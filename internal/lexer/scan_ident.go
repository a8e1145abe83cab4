package lexer

import (
	"cee/internal/token"
)

func (s *Scanner) scanIdent() token.RawToken {
	begin := s.cursor.Pos()
	for {
		ch, err := s.cursor.Peek()
		if err != nil || !isIdentContinue(ch) {
			break
		}
		s.cursor.Bump()
	}
	return token.RawToken{
		Span: s.cursor.SpanFrom(begin),
		Kind: token.RawIdent,
		Text: s.cursor.Slice(begin),
	}
}
