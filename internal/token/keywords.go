package token

// table maps the fixed spellings of keywords, punctuation and delimiters to
// their kinds. It is never written after package initialisation.
var table = map[string]Kind{
	"<-":       Pass,
	"break":    Break,
	"continue": Continue,
	"else":     Else,
	"for":      For,
	"func":     Func,
	"if":       If,
	"import":   Import,
	"trait":    Trait,
	"return":   Return,
	"match":    Match,
	"struct":   Struct,
	"mut":      Mut,
	"val":      Val,
	"(":        LParen,
	"[":        LBrack,
	"{":        LBrace,
	")":        RParen,
	"]":        RBrack,
	"}":        RBrace,
	":":        Colon,
	";":        Semicolon,
	",":        Comma,
	".":        Dot,
	"?":        Question,
	"=":        Assign,
	"\n":       Newline,
}

// Lookup returns the kind for a fixed spelling, if the table has one.
// Lookups are case-sensitive.
func Lookup(text string) (Kind, bool) {
	k, ok := table[text]
	return k, ok
}

// LookupKeyword is like Lookup but only reports reserved words.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := table[ident]
	if !ok || !k.IsKeyword() {
		return None, false
	}
	return k, true
}
