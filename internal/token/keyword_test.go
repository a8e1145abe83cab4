package token

import (
	"testing"
)

func TestLookup_Positive(t *testing.T) {
	cases := map[string]Kind{
		"func":   Func,
		"struct": Struct,
		"trait":  Trait,
		"import": Import,
		"mut":    Mut,
		"val":    Val,
		"return": Return,
		"<-":     Pass,
		"{":      LBrace,
		";":      Semicolon,
		"\n":     Newline,
		"?":      Question,
	}

	for lexeme, want := range cases {
		got, ok := Lookup(lexeme)
		if !ok {
			t.Fatalf("Lookup(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("Lookup(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookup_Negative(t *testing.T) {
	// регистр важен
	notKw := []string{"Func", "STRUCT", "Struct", "x", "+", "<=", "->", "let"}
	for _, s := range notKw {
		if k, ok := Lookup(s); ok {
			t.Fatalf("Lookup(%q) = %v, want miss", s, k)
		}
	}
}

func TestLookupKeywordSkipsPunctuation(t *testing.T) {
	if _, ok := LookupKeyword("("); ok {
		t.Fatal("'(' is not a keyword")
	}
	if k, ok := LookupKeyword("break"); !ok || k != Break {
		t.Fatalf("LookupKeyword(break) = %v, %v", k, ok)
	}
}

func TestEveryKindHasName(t *testing.T) {
	for k := None; k <= Newline; k++ {
		if k.String() == "Kind(?)" {
			t.Errorf("kind %d has no name", k)
		}
	}
}
