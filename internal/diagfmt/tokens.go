package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"cee/internal/source"
	"cee/internal/token"
)

type TokenOutput struct {
	Kind  string      `json:"kind"`
	Text  string      `json:"text,omitempty"`
	Base  int         `json:"base,omitempty"`
	Depth int         `json:"depth,omitempty"`
	Span  source.Span `json:"span"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		start, end := fs.Resolve(tok.Span)
		if _, err := fmt.Fprintf(w, "%3d: %-12s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Text != "" && tok.Kind != token.Semicolon {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		if tok.Kind == token.Int && tok.Base != token.Base10 {
			fmt.Fprintf(w, " base=%d", tok.Base)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
		if tok.Depth > 0 {
			fmt.Fprintf(w, " depth=%d", tok.Depth)
		}
		fmt.Fprintln(w)
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{
			Kind:  tok.Kind.String(),
			Text:  tok.Text,
			Depth: tok.Depth,
			Span:  tok.Span,
		}
		if tok.Kind == token.Int {
			out.Base = int(tok.Base)
		}
		output = append(output, out)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// FormatRawTokensPretty prints scanner output before keyword lookup and
// semicolon insertion.
func FormatRawTokensPretty(w io.Writer, tokens []token.RawToken, fs *source.FileSet) error {
	for i, tok := range tokens {
		start, end := fs.Resolve(tok.Span)
		if _, err := fmt.Fprintf(w, "%3d: %-10s %q at %d:%d-%d:%d\n",
			i+1, tok.Kind.String(), tok.Text, start.Line, start.Col, end.Line, end.Col); err != nil {
			return err
		}
	}
	return nil
}

func FormatRawTokensJSON(w io.Writer, tokens []token.RawToken) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{Kind: tok.Kind.String(), Text: tok.Text, Span: tok.Span}
		if tok.Kind == token.RawInt {
			out.Base = int(tok.Base)
		}
		output = append(output, out)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
