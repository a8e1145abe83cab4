package driver

import (
	"context"
	"errors"
	"fmt"

	"cee/internal/diag"
	"cee/internal/lexer"
	"cee/internal/source"
	"cee/internal/token"
	"cee/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token    // refined stream, ends with EOF unless a lexical error stopped it
	Raw     []token.RawToken // only for TokenizeRaw
	Bag     *diag.Bag
}

// Tokenize runs the refining lexer over path. A lexical error ends the
// stream and is reported in Bag.
func Tokenize(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	span, _ := trace.BeginCtx(ctx, trace.ScopePhase, "tokenize")
	defer span.End(path)

	fs, file, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	res := &TokenizeResult{FileSet: fs, File: file, Bag: diag.NewBag(opts.maxDiagnostics())}
	opts.measure("tokenize", func() string {
		res.Tokens, err = tokenizeFile(file, res.Bag)
		return fmt.Sprintf("%d tokens", len(res.Tokens))
	})
	if err != nil {
		return nil, err
	}
	span.WithExtra("tokens", fmt.Sprint(len(res.Tokens)))
	return res, nil
}

func tokenizeFile(file *source.File, bag *diag.Bag) ([]token.Token, error) {
	lx := lexer.New(file)
	tokens := make([]token.Token, 0, len(file.Text)/4)
	for {
		tok, err := lx.Scan()
		if err != nil {
			return tokens, reportLexError(bag, file.ID, err)
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, nil
		}
	}
}

// TokenizeRaw runs only the scanner: no keywords, no semicolon insertion,
// comments included.
func TokenizeRaw(ctx context.Context, path string, opts Options) (*TokenizeResult, error) {
	span, _ := trace.BeginCtx(ctx, trace.ScopePhase, "tokenize-raw")
	defer span.End(path)

	fs, file, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	res := &TokenizeResult{FileSet: fs, File: file, Bag: diag.NewBag(opts.maxDiagnostics())}
	sc := lexer.NewScanner(file, lexer.DefaultConfig)
	for {
		raw, err := sc.Scan()
		if err != nil {
			var eof *lexer.EOFError
			if errors.As(err, &eof) && eof.Boundary {
				return res, nil
			}
			if err := reportLexError(res.Bag, file.ID, err); err != nil {
				return nil, err
			}
			return res, nil
		}
		res.Raw = append(res.Raw, raw)
	}
}
