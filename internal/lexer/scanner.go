package lexer

import (
	"strings"

	"cee/internal/source"
	"cee/internal/token"
)

// Config holds the static character classes of the scanner.
type Config struct {
	// Delimiters are single characters emitted as RawDelimiter tokens.
	Delimiters string
	// Whitespace is skipped between tokens.
	Whitespace string
}

// DefaultConfig: newline is a delimiter, not whitespace, so it reaches the
// refiner for semicolon insertion.
var DefaultConfig = Config{
	Delimiters: "()[]{},;\n",
	Whitespace: " \t\r",
}

// Scanner classifies characters into raw tokens. It knows nothing about
// keywords or semicolons; see Lexer for that.
type Scanner struct {
	file    *source.File
	cursor  Cursor
	cfg     Config
	started bool
}

// NewScanner creates a scanner over file.
func NewScanner(file *source.File, cfg Config) *Scanner {
	return &Scanner{
		file:   file,
		cursor: NewCursor(file),
		cfg:    cfg,
	}
}

// Pos returns the position of the next unread character.
func (s *Scanner) Pos() source.Position {
	return s.cursor.Pos()
}

// Scan returns the next raw token. At the end of input it returns an
// *EOFError with Boundary set; malformed input yields *FormatError or an
// *EOFError naming the unexpected character.
func (s *Scanner) Scan() (token.RawToken, error) {
	if !s.started {
		s.started = true
		s.skipShebang()
	}
	s.skipWhitespace()

	ch, err := s.cursor.Peek()
	if err != nil {
		return token.RawToken{}, &EOFError{Pos: s.cursor.Pos(), Boundary: true}
	}

	switch {
	case isIdentStart(ch):
		return s.scanIdent(), nil
	case isDec(ch):
		return s.scanNumber()
	case s.isDelimiter(ch):
		begin := s.cursor.Pos()
		s.cursor.Bump()
		return token.RawToken{
			Span: s.cursor.SpanFrom(begin),
			Kind: token.RawDelimiter,
			Text: string(ch),
		}, nil
	case ch == '"' || ch == '\'':
		return s.scanQuoted(ch)
	case ch == '/':
		return s.scanComment()
	case isOperatorChar(ch):
		return s.scanOperator(), nil
	default:
		return token.RawToken{}, &EOFError{Pos: s.cursor.Pos(), Unexpected: ch}
	}
}

func (s *Scanner) isDelimiter(ch rune) bool {
	return strings.ContainsRune(s.cfg.Delimiters, ch)
}

func (s *Scanner) isWhitespace(ch rune) bool {
	return strings.ContainsRune(s.cfg.Whitespace, ch)
}

func (s *Scanner) skipWhitespace() {
	for {
		ch, err := s.cursor.Peek()
		if err != nil || !s.isWhitespace(ch) {
			return
		}
		s.cursor.Bump()
	}
}

// skipShebang drops a leading "#!" line.
func (s *Scanner) skipShebang() {
	ch, err := s.cursor.Peek()
	if err != nil || ch != '#' {
		return
	}
	if next, ok := s.cursor.PeekNext(); ok && next == '!' {
		s.cursor.SkipToNextLine()
	}
}

// scanOperator consumes a run of punctuation, stopping at quotes and delimiters.
func (s *Scanner) scanOperator() token.RawToken {
	begin := s.cursor.Pos()
	for {
		ch, err := s.cursor.Peek()
		if err != nil || !isOperatorChar(ch) || s.isDelimiter(ch) {
			break
		}
		s.cursor.Bump()
	}
	return token.RawToken{
		Span: s.cursor.SpanFrom(begin),
		Kind: token.RawOperator,
		Text: s.cursor.Slice(begin),
	}
}
