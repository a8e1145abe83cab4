package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"cee/internal/diag"
	"cee/internal/source"
	"cee/internal/token"
)

// scanQuoted reads a "..." or '...' literal and decodes its escapes.
// Unterminated literals end in *EOFError.
func (s *Scanner) scanQuoted(quote rune) (token.RawToken, error) {
	begin := s.cursor.Pos()
	s.cursor.Bump() // opening quote

	var sb strings.Builder
	for {
		ch, err := s.cursor.Advance()
		if err != nil {
			return token.RawToken{}, err
		}
		switch ch {
		case quote:
			kind := token.RawString
			if quote == '\'' {
				kind = token.RawChar
			}
			return token.RawToken{
				Span: s.cursor.SpanFrom(begin),
				Kind: kind,
				Text: sb.String(),
			}, nil
		case '\\':
			r, err := s.scanEscape(quote)
			if err != nil {
				return token.RawToken{}, err
			}
			sb.WriteRune(r)
		default:
			sb.WriteRune(ch)
		}
	}
}

// scanEscape decodes one escape; the backslash is already consumed.
func (s *Scanner) scanEscape(quote rune) (rune, error) {
	begin := s.cursor.Pos()
	begin.Offset-- // включаем '\' в span ошибки
	begin.Column--

	ch, err := s.cursor.Advance()
	if err != nil {
		return 0, err
	}
	switch ch {
	case 'n':
		return '\n', nil
	case 't':
		return '\t', nil
	case 'r':
		return '\r', nil
	case '\\':
		return '\\', nil
	case quote:
		return quote, nil
	case 'x':
		return s.scanUnicodeHex(begin, 2)
	case 'u':
		return s.scanUnicodeHex(begin, 4)
	case 'U':
		return s.scanUnicodeHex(begin, 8)
	default:
		return 0, s.formatError(begin, diag.LexBadEscape, fmt.Sprintf("unknown escape sequence '\\%c'", ch))
	}
}

// scanUnicodeHex reads exactly n hex digits and returns the code point.
func (s *Scanner) scanUnicodeHex(begin source.Position, n int) (rune, error) {
	var value rune
	for range n {
		ch, err := s.cursor.Advance()
		if err != nil {
			return 0, err
		}
		if !isHex(ch) {
			return 0, s.formatError(begin, diag.LexBadEscape, fmt.Sprintf("invalid hex digit %q in escape", ch))
		}
		value = value<<4 | hexValue(ch)
	}
	if !utf8.ValidRune(value) {
		return 0, s.formatError(begin, diag.LexBadEscape, fmt.Sprintf("escape is not a valid code point: %#x", value))
	}
	return value, nil
}
