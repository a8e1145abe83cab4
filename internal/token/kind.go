package token

// Kind represents the category of a refined token.
type Kind uint8

const (
	// None is the zero kind; no token produced by the lexer carries it.
	None Kind = iota
	// EOF marks the clean end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Operator represents an operator run that is not in the keyword table.
	Operator
	// Int represents an integer literal; the base is carried in Token.Base.
	Int
	// Float represents a decimal floating point literal.
	Float
	// String represents a double-quoted string literal.
	String
	// Char represents a single-quoted character literal.
	Char

	// Pass represents the result arrow '<-'.
	Pass // <-
	// Break represents the 'break' keyword.
	Break // break
	// Continue represents the 'continue' keyword.
	Continue // continue
	// Else represents the 'else' keyword.
	Else // else
	// For represents the 'for' keyword.
	For // for
	// Func represents the 'func' keyword.
	Func // func
	// If represents the 'if' keyword.
	If // if
	// Import represents the 'import' keyword.
	Import // import
	// Trait represents the 'trait' keyword.
	Trait // trait
	// Return represents the 'return' keyword.
	Return // return
	// Match represents the 'match' keyword.
	Match // match
	// Struct represents the 'struct' keyword.
	Struct // struct
	// Mut represents the 'mut' keyword.
	Mut // mut
	// Val represents the 'val' keyword.
	Val // val

	// LParen represents the '(' token.
	LParen // (
	// LBrack represents the '[' token.
	LBrack // [
	// LBrace represents the '{' token.
	LBrace // {
	// RParen represents the ')' token.
	RParen // )
	// RBrack represents the ']' token.
	RBrack // ]
	// RBrace represents the '}' token.
	RBrace // }
	// Colon represents the ':' token.
	Colon // :
	// Semicolon represents ';', written or inserted at a newline.
	Semicolon // ;
	// Comma represents the ',' token.
	Comma // ,
	// Dot represents the '.' token.
	Dot // .
	// Question represents the '?' unwrap operator.
	Question // ?
	// Assign represents the '=' token.
	Assign // =
	// Newline represents a line break before semicolon insertion.
	Newline // \n
)

var kindNames = [...]string{
	None:      "None",
	EOF:       "EOF",
	Ident:     "Ident",
	Operator:  "Operator",
	Int:       "Int",
	Float:     "Float",
	String:    "String",
	Char:      "Char",
	Pass:      "'<-'",
	Break:     "'break'",
	Continue:  "'continue'",
	Else:      "'else'",
	For:       "'for'",
	Func:      "'func'",
	If:        "'if'",
	Import:    "'import'",
	Trait:     "'trait'",
	Return:    "'return'",
	Match:     "'match'",
	Struct:    "'struct'",
	Mut:       "'mut'",
	Val:       "'val'",
	LParen:    "'('",
	LBrack:    "'['",
	LBrace:    "'{'",
	RParen:    "')'",
	RBrack:    "']'",
	RBrace:    "'}'",
	Colon:     "':'",
	Semicolon: "';'",
	Comma:     "','",
	Dot:       "'.'",
	Question:  "'?'",
	Assign:    "'='",
	Newline:   "newline",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= Break && k <= Val
}

// IsLiteral reports whether k is a number, string or char literal.
func (k Kind) IsLiteral() bool {
	switch k {
	case Int, Float, String, Char:
		return true
	default:
		return false
	}
}

// Closer returns the closing bracket for an opening bracket kind.
func (k Kind) Closer() (Kind, bool) {
	switch k {
	case LParen:
		return RParen, true
	case LBrack:
		return RBrack, true
	case LBrace:
		return RBrace, true
	default:
		return None, false
	}
}

// IsCloser reports whether k closes a bracket.
func (k Kind) IsCloser() bool {
	return k == RParen || k == RBrack || k == RBrace
}

// EndsStatement reports whether a newline right after a token of kind k
// turns into a semicolon. Postfix '?' counts, like Go's '++'.
func (k Kind) EndsStatement() bool {
	switch k {
	case Ident, Int, Float, String, Char,
		RParen, RBrack, RBrace,
		Return, Break, Continue,
		Question:
		return true
	default:
		return false
	}
}
