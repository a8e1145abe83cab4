package lexer

import (
	"errors"
	"testing"

	"cee/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.cee", []byte(content))
	return fs.Get(id)
}

func TestCursorAdvanceTracksLines(t *testing.T) {
	cursor := NewCursor(createFile("aα\nb"))

	want := []source.Position{
		{Offset: 1, Line: 0, Column: 1},
		{Offset: 2, Line: 0, Column: 2}, // α — один символ, не два байта
		{Offset: 3, Line: 1, Column: 0},
		{Offset: 4, Line: 1, Column: 1},
	}
	prev := cursor.Pos()
	for i, w := range want {
		if _, err := cursor.Advance(); err != nil {
			t.Fatalf("Advance #%d: %v", i, err)
		}
		got := cursor.Pos()
		if got != w {
			t.Errorf("after #%d: got %v, want %v", i, got, w)
		}
		if got.Offset != prev.Offset+1 || got.Line < prev.Line {
			t.Errorf("position not monotonic: %v -> %v", prev, got)
		}
		prev = got
	}
	if !cursor.EOF() {
		t.Fatal("expected EOF")
	}
}

func TestCursorPeekAtEnd(t *testing.T) {
	cursor := NewCursor(createFile("x"))
	if ch, err := cursor.Peek(); err != nil || ch != 'x' {
		t.Fatalf("Peek = %q, %v", ch, err)
	}
	cursor.Bump()

	_, err := cursor.Peek()
	if !errors.Is(err, ErrEndOfInput) {
		t.Fatalf("Peek at end: want ErrEndOfInput, got %v", err)
	}
	if _, err := cursor.Advance(); !errors.Is(err, ErrEndOfInput) {
		t.Fatalf("Advance at end: want ErrEndOfInput, got %v", err)
	}
	// Bump на EOF ничего не делает
	cursor.Bump()
	if cursor.Pos().Offset != 1 {
		t.Fatalf("Bump moved past end: %v", cursor.Pos())
	}
}

func TestCursorSkipToNextLine(t *testing.T) {
	cursor := NewCursor(createFile("abc\ndef"))
	if !cursor.SkipToNextLine() {
		t.Fatal("expected a newline to be consumed")
	}
	if got := cursor.Pos(); got != (source.Position{Offset: 4, Line: 1, Column: 0}) {
		t.Fatalf("position after skip = %v", got)
	}
	if cursor.SkipToNextLine() {
		t.Fatal("no newline left, expected false")
	}
	if !cursor.EOF() {
		t.Fatal("expected EOF after skipping the last line")
	}
}

func TestCursorSkipToLineEndKeepsNewline(t *testing.T) {
	cursor := NewCursor(createFile("ab\nc"))
	cursor.SkipToLineEnd()
	if ch, err := cursor.Peek(); err != nil || ch != '\n' {
		t.Fatalf("expected to stop at newline, got %q, %v", ch, err)
	}
}

func TestCursorResetAndSlice(t *testing.T) {
	cursor := NewCursor(createFile("hello"))
	begin := cursor.Pos()
	cursor.Bump()
	cursor.Bump()
	if got := cursor.Slice(begin); got != "he" {
		t.Fatalf("Slice = %q", got)
	}
	if sp := cursor.SpanFrom(begin); sp.Len() != 2 {
		t.Fatalf("SpanFrom len = %d", sp.Len())
	}
	cursor.Reset(begin)
	if cursor.Pos() != begin {
		t.Fatal("Reset did not restore the position")
	}
}
