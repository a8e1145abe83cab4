package lexer

import (
	"fmt"

	"cee/internal/diag"
	"cee/internal/source"
	"cee/internal/token"
)

// Поддержка: 0, 123, 0b101, 0o17, 0x1a, 1.5.
// Для 0x/0o/0b в Text кладём только цифры, без префикса.
func (s *Scanner) scanNumber() (token.RawToken, error) {
	begin := s.cursor.Pos()

	if ch, _ := s.cursor.Peek(); ch == '0' {
		s.cursor.Bump()
		next, err := s.cursor.Peek()
		if err == nil {
			switch next {
			case 'x':
				return s.scanBased(begin, token.Base16, isHex)
			case 'o':
				return s.scanBased(begin, token.Base8, isOct)
			case 'b':
				return s.scanBased(begin, token.Base2, isBin)
			}
			if isIdentContinue(next) {
				s.cursor.Bump()
				return token.RawToken{}, s.formatError(begin, diag.LexBadNumber,
					fmt.Sprintf("invalid character %q after leading 0", next))
			}
		}
		s.cursor.Reset(begin)
	}

	s.eatDigits(isDec)
	kind := token.RawInt

	// дробная часть только если после точки есть цифра: "x.0.y" не число
	if ch, err := s.cursor.Peek(); err == nil && ch == '.' {
		if next, ok := s.cursor.PeekNext(); ok && isDec(next) {
			s.cursor.Bump()
			s.eatDigits(isDec)
			kind = token.RawFloat
		}
	}
	if err := s.checkNumberEnd(begin, "decimal"); err != nil {
		return token.RawToken{}, err
	}

	raw := token.RawToken{
		Span: s.cursor.SpanFrom(begin),
		Kind: kind,
		Text: s.cursor.Slice(begin),
	}
	if kind == token.RawInt {
		raw.Base = token.Base10
	}
	return raw, nil
}

func (s *Scanner) scanBased(begin source.Position, base token.IntBase, digit func(rune) bool) (token.RawToken, error) {
	s.cursor.Bump()
	digitsBegin := s.cursor.Pos()
	if s.eatDigits(digit) == 0 {
		return token.RawToken{}, s.formatError(begin, diag.LexBadNumber,
			fmt.Sprintf("missing digits in base-%d literal", base))
	}
	if err := s.checkNumberEnd(begin, fmt.Sprintf("base-%d", base)); err != nil {
		return token.RawToken{}, err
	}
	return token.RawToken{
		Span: s.cursor.SpanFrom(begin),
		Kind: token.RawInt,
		Base: base,
		Text: s.cursor.Slice(digitsBegin),
	}, nil
}

func (s *Scanner) eatDigits(digit func(rune) bool) int {
	n := 0
	for {
		ch, err := s.cursor.Peek()
		if err != nil || !digit(ch) {
			return n
		}
		s.cursor.Bump()
		n++
	}
}

// checkNumberEnd rejects literals glued to letters or digits of another base ("0x1g", "0b12").
func (s *Scanner) checkNumberEnd(begin source.Position, what string) error {
	ch, err := s.cursor.Peek()
	if err != nil || !isIdentContinue(ch) {
		return nil
	}
	s.cursor.Bump()
	return s.formatError(begin, diag.LexBadNumber, fmt.Sprintf("invalid digit %q in %s literal", ch, what))
}

func (s *Scanner) formatError(begin source.Position, code diag.Code, reason string) *FormatError {
	return &FormatError{Span: s.cursor.SpanFrom(begin), Kind: code, Reason: reason}
}
