package lexer

import (
	"fmt"

	"cee/internal/source"

	"fortio.org/safecast"
)

// Cursor walks the character buffer of a file and tracks the position.
type Cursor struct {
	File  *source.File
	pos   source.Position
	limit uint32
}

// NewCursor creates a new cursor for the provided file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Text))
	if err != nil {
		panic(fmt.Errorf("len file text overflow: %w", err))
	}
	return Cursor{File: f, limit: limit}
}

// Pos returns the position of the next character.
func (c *Cursor) Pos() source.Position {
	return c.pos
}

// EOF проверяет, достигнут ли конец файла
func (c *Cursor) EOF() bool {
	return c.pos.Offset >= c.limit
}

// Peek returns the character at the cursor without consuming it.
func (c *Cursor) Peek() (rune, error) {
	if c.EOF() {
		return 0, &EOFError{Pos: c.pos}
	}
	return c.File.Text[c.pos.Offset], nil
}

// PeekNext returns the character after the current one.
func (c *Cursor) PeekNext() (rune, bool) {
	if c.pos.Offset+1 >= c.limit {
		return 0, false
	}
	return c.File.Text[c.pos.Offset+1], true
}

// Advance consumes one character and returns it.
func (c *Cursor) Advance() (rune, error) {
	ch, err := c.Peek()
	if err != nil {
		return 0, err
	}
	c.pos = c.pos.Advance(ch)
	return ch, nil
}

// Bump consumes the current character, if any. Callers use it after a
// successful Peek.
func (c *Cursor) Bump() {
	if ch, err := c.Peek(); err == nil {
		c.pos = c.pos.Advance(ch)
	}
}

// SkipToNextLine consumes characters up to and including the next newline.
// It reports whether a newline was consumed; hitting end of input simply stops.
func (c *Cursor) SkipToNextLine() bool {
	for {
		ch, err := c.Advance()
		if err != nil {
			return false
		}
		if ch == '\n' {
			return true
		}
	}
}

// SkipToLineEnd consumes characters up to, but not including, the next newline.
func (c *Cursor) SkipToLineEnd() {
	for {
		ch, err := c.Peek()
		if err != nil || ch == '\n' {
			return
		}
		c.pos = c.pos.Advance(ch)
	}
}

// Reset moves the cursor back to pos.
func (c *Cursor) Reset(pos source.Position) {
	c.pos = pos
}

// SpanFrom returns the span from begin to the cursor.
func (c *Cursor) SpanFrom(begin source.Position) source.Span {
	return source.Span{File: c.File.ID, Begin: begin, End: c.pos}
}

// Slice returns the text between begin and the cursor.
func (c *Cursor) Slice(begin source.Position) string {
	return string(c.File.Text[begin.Offset:c.pos.Offset])
}
