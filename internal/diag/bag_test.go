package diag

import (
	"testing"
)

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	for i := range 3 {
		ok := b.Add(NewError(SynUnexpectedToken, span(0, uint32(i), 0, uint32(i), 1), "x"))
		if want := i < 2; ok != want {
			t.Fatalf("Add #%d = %v, want %v", i, ok, want)
		}
	}
	if !b.Full() || b.Len() != 2 {
		t.Fatalf("expected a full bag of 2, got %d", b.Len())
	}
}

func TestBagKeepsDetectionOrderUntilSort(t *testing.T) {
	b := NewBag(10)
	b.Add(NewError(SynExpectType, span(0, 9, 0, 9, 1), "late"))
	b.Add(New(SevWarning, SynDuplicateImport, span(0, 1, 0, 1, 1), "early"))

	if b.Items()[0].Message != "late" {
		t.Fatal("detection order must be preserved")
	}
	if !b.HasErrors() || !b.HasWarnings() {
		t.Fatal("expected both errors and warnings")
	}

	b.Sort()
	if b.Items()[0].Message != "early" {
		t.Fatalf("Sort must order by position, got %q first", b.Items()[0].Message)
	}
}

func TestBagDedupAndMerge(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(SynUnexpectedToken, span(0, 0, 0, 0, 1), "x"))

	other := NewBag(5)
	other.Add(NewError(SynUnexpectedToken, span(0, 0, 0, 0, 1), "x"))
	other.Add(NewError(SynExpectType, span(0, 4, 0, 4, 1), "y"))

	a.Merge(other)
	if a.Len() != 3 {
		t.Fatalf("Merge must grow the limit, got %d items", a.Len())
	}
}

func TestUnexpectedMessage(t *testing.T) {
	d := Unexpected(SynUnexpectedToken, span(0, 0, 0, 0, 1), "identifier", "'}'")
	if d.Message != "expected identifier, found '}'" || !d.IsUnexpected() {
		t.Fatalf("unexpected diagnostic: %+v", d)
	}
	if d.Code.ID() != "SYN2001" {
		t.Fatalf("ID() = %s", d.Code.ID())
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(10)
	r := NewDedupReporter(BagReporter{Bag: bag})
	d := NewError(SynUnexpectedToken, span(0, 0, 0, 0, 1), "x")
	ReportError(r, d.Code, d.Primary, d.Message).Emit()
	ReportError(r, d.Code, d.Primary, d.Message).WithNote(d.Primary, "again").Emit()
	ReportWarning(r, d.Code, d.Primary, d.Message).Emit()
	if bag.Len() != 2 || r.Dropped() != 1 {
		t.Fatalf("got %d diagnostics, %d dropped", bag.Len(), r.Dropped())
	}
}

func TestBagAtLeast(t *testing.T) {
	b := NewBag(4)
	b.Add(New(SevInfo, SynDuplicateImport, span(0, 0, 0, 0, 1), "i"))
	b.Add(New(SevWarning, SynDuplicateImport, span(0, 1, 0, 1, 1), "w"))
	b.Add(NewError(SynUnexpectedToken, span(0, 2, 0, 2, 1), "e"))

	if got := b.AtLeast(SevWarning); got.Len() != 2 || got.Items()[0].Message != "w" {
		t.Fatalf("AtLeast(warning) = %+v", got.Items())
	}
	if got := b.AtLeast(SevError); got.Len() != 1 || !got.HasErrors() {
		t.Fatalf("AtLeast(error) = %+v", got.Items())
	}
	if b.Len() != 3 {
		t.Fatal("AtLeast must not modify the receiver")
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in   string
		want Severity
		ok   bool
	}{
		{"info", SevInfo, true},
		{"Warning", SevWarning, true},
		{" ERROR ", SevError, true},
		{"fatal", SevInfo, false},
	}
	for _, tt := range tests {
		got, err := ParseSeverity(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParseSeverity(%q) = %v, %v", tt.in, got, err)
		}
	}
	if Severity(7).String() != "UNKNOWN" {
		t.Error("out of range severity must print UNKNOWN")
	}
}
