package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0
	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexBadEscape                Code = 1005
	LexBadComment               Code = 1006
	LexUnexpectedEOF            Code = 1007

	// Парсерные
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynUnclosedDelimiter Code = 2002

	// import errors & warnings
	SynUnexpectedTopLevel Code = 2101
	SynExpectIdentifier   Code = 2102
	SynExpectImportPath   Code = 2103
	SynDuplicateImport    Code = 2104

	// type & expression errors
	SynExpectType       Code = 2202
	SynExpectExpression Code = 2203
	SynExpectStatement  Code = 2204

	// IO
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Malformed number literal",
	LexBadEscape:                "Invalid escape sequence",
	LexBadComment:               "Malformed comment",
	LexUnexpectedEOF:            "Unexpected end of input",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynUnclosedDelimiter:        "Unclosed delimiter",
	SynUnexpectedTopLevel:       "Unexpected top-level token",
	SynExpectIdentifier:         "Expected identifier",
	SynExpectImportPath:         "Expected import path",
	SynDuplicateImport:          "Duplicate import name",
	SynExpectType:               "Expected type",
	SynExpectExpression:         "Expected expression",
	SynExpectStatement:          "Expected statement",
	IOLoadFileError:             "Failed to load file",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
