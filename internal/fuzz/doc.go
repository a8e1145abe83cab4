// Package fuzztests houses Go fuzz harnesses for the front end
// (source -> lexer -> parser). They guard against panics, hangs and broken
// positions on arbitrary input.
//
// Seeds come from the *.cee files under testdata/ at the repository root.

package fuzztests
