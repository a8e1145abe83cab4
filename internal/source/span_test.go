package source

import (
	"testing"
)

func pos(off, line, col uint32) Position {
	return Position{Offset: off, Line: line, Column: col}
}

func TestPositionAdvance(t *testing.T) {
	p := Position{}
	for _, ch := range "ab\ncd" {
		next := p.Advance(ch)
		if next.Offset != p.Offset+1 {
			t.Fatalf("offset did not grow by one: %v -> %v", p, next)
		}
		if next.Line < p.Line {
			t.Fatalf("line went backwards: %v -> %v", p, next)
		}
		p = next
	}
	if p != pos(5, 1, 2) {
		t.Errorf("final position = %v, want 5:1:2", p)
	}
}

func TestPositionString(t *testing.T) {
	if got := pos(26, 1, 3).String(); got != "26:1:3" {
		t.Errorf("String() = %q", got)
	}
}

func TestSpanString(t *testing.T) {
	sp := Span{Begin: pos(0, 0, 0), End: pos(3, 0, 3)}
	if got := sp.String(); got != "0:0:0 -> 3:0:3" {
		t.Errorf("String() = %q", got)
	}
}

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected Span
	}{
		{
			name:     "disjoint",
			a:        Span{File: 1, Begin: pos(2, 0, 2), End: pos(4, 0, 4)},
			b:        Span{File: 1, Begin: pos(8, 1, 0), End: pos(9, 1, 1)},
			expected: Span{File: 1, Begin: pos(2, 0, 2), End: pos(9, 1, 1)},
		},
		{
			name:     "nested",
			a:        Span{File: 1, Begin: pos(0, 0, 0), End: pos(10, 0, 10)},
			b:        Span{File: 1, Begin: pos(3, 0, 3), End: pos(4, 0, 4)},
			expected: Span{File: 1, Begin: pos(0, 0, 0), End: pos(10, 0, 10)},
		},
		{
			name:     "different files keep receiver",
			a:        Span{File: 1, Begin: pos(2, 0, 2), End: pos(4, 0, 4)},
			b:        Span{File: 2, Begin: pos(0, 0, 0), End: pos(9, 0, 9)},
			expected: Span{File: 1, Begin: pos(2, 0, 2), End: pos(4, 0, 4)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.expected {
				t.Errorf("Cover() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSpanContainsAndLen(t *testing.T) {
	outer := Span{Begin: pos(0, 0, 0), End: pos(10, 0, 10)}
	inner := Span{Begin: pos(2, 0, 2), End: pos(5, 0, 5)}
	if !outer.Contains(inner) || inner.Contains(outer) {
		t.Error("Contains mismatch")
	}
	if inner.Len() != 3 {
		t.Errorf("Len() = %d", inner.Len())
	}
	if !At(0, pos(7, 0, 7)).Empty() {
		t.Error("At() must be empty")
	}
}
