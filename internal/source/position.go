package source

import "fmt"

// Position is a point in a source buffer. Offset counts characters (runes),
// not bytes. Line and Column are 0-based.
type Position struct {
	Offset uint32
	Line   uint32
	Column uint32
}

// Advance returns the position after consuming ch.
// A newline moves to the start of the next line.
func (p Position) Advance(ch rune) Position {
	p.Offset++
	if ch == '\n' {
		p.Line++
		p.Column = 0
		return p
	}
	p.Column++
	return p
}

// Before reports whether p comes strictly before other.
func (p Position) Before(other Position) bool {
	return p.Offset < other.Offset
}

// String renders the position as "offset:line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d:%d", p.Offset, p.Line, p.Column)
}
