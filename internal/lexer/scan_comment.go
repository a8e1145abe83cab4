package lexer

import (
	"fmt"

	"cee/internal/diag"
	"cee/internal/token"
)

// scanComment reads "// ..." up to the newline (the newline stays in the
// input) or "/* ... */". A lone '/' is not valid anywhere.
func (s *Scanner) scanComment() (token.RawToken, error) {
	begin := s.cursor.Pos()
	s.cursor.Bump() // '/'

	ch, err := s.cursor.Advance()
	if err != nil {
		return token.RawToken{}, err
	}
	switch ch {
	case '/':
		s.cursor.SkipToLineEnd()
	case '*':
		if err := s.skipBlockComment(); err != nil {
			return token.RawToken{}, err
		}
	default:
		return token.RawToken{}, s.formatError(begin, diag.LexBadComment,
			fmt.Sprintf("expected '/' or '*' after '/', found %q", ch))
	}
	return token.RawToken{
		Span: s.cursor.SpanFrom(begin),
		Kind: token.RawComment,
		Text: s.cursor.Slice(begin),
	}, nil
}

func (s *Scanner) skipBlockComment() error {
	for {
		ch, err := s.cursor.Advance()
		if err != nil {
			return err
		}
		if ch != '*' {
			continue
		}
		if next, err := s.cursor.Peek(); err == nil && next == '/' {
			s.cursor.Bump()
			return nil
		}
	}
}
