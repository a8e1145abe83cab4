package parser

import (
	"cee/internal/token"
)

// Таблица приоритетов для бинарных операторов
// Чем больше число, тем выше приоритет
const (
	precAssignment     = 1  // =
	precLogicalOr      = 2  // ||
	precLogicalAnd     = 3  // &&
	precEquality       = 4  // == !=
	precComparison     = 5  // < <= > >=
	precBitwiseOr      = 6  // |
	precBitwiseXor     = 7  // ^
	precBitwiseAnd     = 8  // &
	precShift          = 9  // << >>
	precAdditive       = 10 // + -
	precMultiplicative = 11 // * %
)

// binaryPrec возвращает приоритет и ассоциативность оператора.
// Operator runs are matched by text; anything else is not binary (-1).
func binaryPrec(tok token.Token) (prec int, rightAssoc bool) {
	if tok.Kind == token.Assign {
		return precAssignment, true
	}
	if tok.Kind != token.Operator {
		return -1, false
	}
	switch tok.Text {
	case "||":
		return precLogicalOr, false
	case "&&":
		return precLogicalAnd, false
	case "==", "!=":
		return precEquality, false
	case "<", "<=", ">", ">=":
		return precComparison, false
	case "|":
		return precBitwiseOr, false
	case "^":
		return precBitwiseXor, false
	case "&":
		return precBitwiseAnd, false
	case "<<", ">>":
		return precShift, false
	case "+", "-":
		return precAdditive, false
	case "*", "%":
		return precMultiplicative, false
	default:
		return -1, false
	}
}

func isUnaryOp(tok token.Token) bool {
	if tok.Kind != token.Operator {
		return false
	}
	switch tok.Text {
	case "-", "+", "!", "^", "&", "*":
		return true
	default:
		return false
	}
}
