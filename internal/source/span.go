package source

import (
	"fmt"
)

// Span is a half-open character range [Begin, End) inside one file.
type Span struct {
	File  FileID
	Begin Position
	End   Position // не включительно
}

// At returns an empty span located at pos.
func At(file FileID, pos Position) Span {
	return Span{File: file, Begin: pos, End: pos}
}

func (s Span) Empty() bool {
	return s.Begin.Offset == s.End.Offset
}

func (s Span) Len() uint32 {
	return s.End.Offset - s.Begin.Offset
}

// String renders the span as "begin -> end".
func (s Span) String() string {
	return fmt.Sprintf("%s -> %s", s.Begin, s.End)
}

// Cover returns the smallest span containing both s and other.
// Spans from different files are not merged.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Begin.Offset < s.Begin.Offset {
		s.Begin = other.Begin
	}
	if other.End.Offset > s.End.Offset {
		s.End = other.End
	}
	return s
}

// Contains reports whether other lies completely inside s.
func (s Span) Contains(other Span) bool {
	return s.File == other.File &&
		s.Begin.Offset <= other.Begin.Offset &&
		other.End.Offset <= s.End.Offset
}
