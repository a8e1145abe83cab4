package lexer

import (
	"unicode"
)

// ===== Классификаторы =====

// Identifiers follow Go: a letter or '_' first, then letters, '_' and any
// Unicode decimal digit. Numbers are ASCII digits only, so a lone '٣' starts
// nothing and is an unknown character.
func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDec(r rune) bool { return r >= '0' && r <= '9' }
func isOct(r rune) bool { return r >= '0' && r <= '7' }
func isBin(r rune) bool { return r == '0' || r == '1' }
func isHex(r rune) bool {
	return (r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'f') ||
		(r >= 'A' && r <= 'F')
}

func hexValue(r rune) rune {
	switch {
	case r >= '0' && r <= '9':
		return r - '0'
	case r >= 'a' && r <= 'f':
		return r - 'a' + 10
	default:
		return r - 'A' + 10
	}
}

// isOperatorChar reports ASCII punctuation that may appear in an operator run.
// Quotes and '_' never do.
func isOperatorChar(r rune) bool {
	if r > unicode.MaxASCII || r == '"' || r == '\'' || r == '_' {
		return false
	}
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
