package token_test

import (
	"testing"

	"cee/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{token.Int, token.Float, token.String, token.Char}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.Val, token.Operator, token.LParen}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestCloser(t *testing.T) {
	pairs := map[token.Kind]token.Kind{
		token.LParen: token.RParen,
		token.LBrack: token.RBrack,
		token.LBrace: token.RBrace,
	}
	for open, want := range pairs {
		got, ok := open.Closer()
		if !ok || got != want {
			t.Errorf("%v.Closer() = %v, %v; want %v", open, got, ok, want)
		}
		if !want.IsCloser() {
			t.Errorf("%v.IsCloser() = false", want)
		}
	}
	if _, ok := token.Comma.Closer(); ok {
		t.Error("',' must not have a closer")
	}
}

func TestEndsStatement(t *testing.T) {
	enders := []token.Kind{
		token.Ident, token.Int, token.Float, token.String, token.Char,
		token.RParen, token.RBrack, token.RBrace,
		token.Return, token.Break, token.Continue, token.Question,
	}
	for _, k := range enders {
		if !k.EndsStatement() {
			t.Errorf("%v should end a statement", k)
		}
	}
	others := []token.Kind{
		token.LParen, token.LBrace, token.Comma, token.Operator,
		token.Func, token.Pass, token.Semicolon, token.Assign,
	}
	for _, k := range others {
		if k.EndsStatement() {
			t.Errorf("%v must not end a statement", k)
		}
	}
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		tok  token.Token
		want string
	}{
		{token.Token{Kind: token.Ident, Text: "bad"}, "Ident 'bad'"},
		{token.Token{Kind: token.RBrace, Text: "}"}, "'}'"},
		{token.Token{Kind: token.String, Text: "x"}, "String literal"},
		{token.Token{Kind: token.EOF}, "end of input"},
	}
	for _, c := range cases {
		if got := c.tok.Describe(); got != c.want {
			t.Errorf("Describe() = %q, want %q", got, c.want)
		}
	}
}

func TestRawKindString(t *testing.T) {
	if token.RawDelimiter.String() != "Delimiter" {
		t.Errorf("RawDelimiter.String() = %q", token.RawDelimiter.String())
	}
}
