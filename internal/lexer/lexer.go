package lexer

import (
	"errors"
	"fmt"
	"slices"

	"cee/internal/source"
	"cee/internal/token"
)

// Lexer refines raw tokens for the parser: it resolves keywords and
// punctuation, inserts semicolons at line ends, drops comments and keeps the
// stack of closers the parser needs for recovery.
type Lexer struct {
	file     *source.File
	sc       *Scanner
	tok      token.Token
	semi     bool         // newline here becomes ';'
	brackets []token.Kind // expected closers, innermost last
	done     bool         // EOF already returned
}

// New creates a lexer over file with DefaultConfig.
func New(file *source.File) *Lexer {
	return NewWithConfig(file, DefaultConfig)
}

// NewWithConfig creates a lexer with custom delimiter and whitespace sets.
// Every delimiter must be present in the keyword table.
func NewWithConfig(file *source.File, cfg Config) *Lexer {
	return &Lexer{
		file: file,
		sc:   NewScanner(file, cfg),
	}
}

// Token returns the most recently scanned token.
func (lx *Lexer) Token() token.Token {
	return lx.tok
}

// Depth returns the number of unmatched opening brackets seen so far.
func (lx *Lexer) Depth() int {
	return len(lx.brackets)
}

// Closers returns a copy of the bracket stack, innermost last.
func (lx *Lexer) Closers() []token.Kind {
	return slices.Clone(lx.brackets)
}

// Scan returns the next refined token. After the input is exhausted it keeps
// returning the EOF token. Lexical errors are returned as is and are final.
func (lx *Lexer) Scan() (token.Token, error) {
	if lx.done {
		return lx.tok, nil
	}
	for {
		raw, err := lx.sc.Scan()
		if err != nil {
			var eof *EOFError
			if !errors.As(err, &eof) || !eof.Boundary {
				return token.Token{}, err
			}
			return lx.finish(eof.Pos), nil
		}

		tok := token.Token{Span: raw.Span, Text: raw.Text}
		switch raw.Kind {
		case token.RawComment:
			// многострочный /* */ работает как перевод строки
			if !lx.semi || raw.Span.End.Line == raw.Span.Begin.Line {
				continue
			}
			tok.Kind = token.Semicolon
		case token.RawDelimiter:
			kind, ok := token.Lookup(raw.Text)
			if !ok {
				return token.Token{}, fmt.Errorf("%w: %q at %s", ErrUnknownDelimiter, raw.Text, raw.Span)
			}
			if kind == token.Newline {
				if !lx.semi {
					continue
				}
				kind = token.Semicolon
			}
			tok.Kind = kind
		case token.RawIdent:
			tok.Kind = lookupOr(raw.Text, token.Ident)
		case token.RawOperator:
			tok.Kind = lookupOr(raw.Text, token.Operator)
		case token.RawInt:
			tok.Kind = token.Int
			tok.Base = raw.Base
		case token.RawFloat:
			tok.Kind = token.Float
		case token.RawString:
			tok.Kind = token.String
		case token.RawChar:
			tok.Kind = token.Char
		}
		return lx.emit(tok), nil
	}
}

// finish handles a clean end of input: a pending semicolon goes out first.
func (lx *Lexer) finish(pos source.Position) token.Token {
	sp := source.At(lx.file.ID, pos)
	if lx.semi {
		return lx.emit(token.Token{Kind: token.Semicolon, Span: sp})
	}
	lx.done = true
	lx.tok = token.Token{Kind: token.EOF, Span: sp, Depth: len(lx.brackets)}
	return lx.tok
}

func (lx *Lexer) emit(tok token.Token) token.Token {
	tok.Depth = len(lx.brackets)
	if closer, ok := tok.Kind.Closer(); ok {
		lx.brackets = append(lx.brackets, closer)
	} else if tok.Kind.IsCloser() {
		if n := len(lx.brackets); n > 0 && lx.brackets[n-1] == tok.Kind {
			lx.brackets = lx.brackets[:n-1]
		}
	}
	lx.semi = tok.Kind.EndsStatement()
	lx.tok = tok
	return tok
}

func lookupOr(text string, fallback token.Kind) token.Kind {
	if k, ok := token.Lookup(text); ok {
		return k
	}
	return fallback
}
