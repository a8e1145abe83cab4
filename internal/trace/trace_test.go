package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "error", "phase", "detail", "debug"} {
		l, err := ParseLevel(s)
		if err != nil || l.String() != s {
			t.Errorf("ParseLevel(%q) = %v, %v", s, l, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("want error for unknown level")
	}
}

func TestLevelFiltersScopes(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelPhase, ScopePhase, true},
		{LevelPhase, ScopeFile, false},
		{LevelDetail, ScopeFile, true},
		{LevelDetail, ScopeNode, false},
		{LevelDebug, ScopeNode, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Errorf("%v.ShouldEmit(%v) = %v", tt.level, tt.scope, got)
		}
	}
}

func TestStreamTextNesting(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatText)
	ctx := WithTracer(context.Background(), tr)

	outer, ctx := BeginCtx(ctx, ScopePhase, "check")
	inner, _ := BeginCtx(ctx, ScopeFile, "file:a.cee")
	inner.WithExtra("tokens", "3").End("ok")
	hidden, _ := BeginCtx(ctx, ScopeNode, "decl")
	hidden.End("")
	outer.End("")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "→ check") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "  → file:a.cee") {
		t.Errorf("nested begin not indented: %q", lines[1])
	}
	if !strings.Contains(lines[2], "← file:a.cee (ok) {tokens=3}") {
		t.Errorf("line 2 = %q", lines[2])
	}
	if hidden.ID() != 0 {
		t.Errorf("node span enabled at detail level")
	}
}

func TestNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatNDJSON)
	root := Begin(tr, ScopeDriver, "cee", nil)
	child := Begin(tr, ScopePhase, "parse", root)
	child.End("")
	root.End("")

	dec := json.NewDecoder(&buf)
	var events []jsonEvent
	for dec.More() {
		var ev jsonEvent
		if err := dec.Decode(&ev); err != nil {
			t.Fatal(err)
		}
		events = append(events, ev)
	}
	if len(events) != 4 {
		t.Fatalf("events = %d", len(events))
	}
	if events[1].Name != "parse" || events[1].ParentID != root.ID() || events[1].Kind != "begin" {
		t.Errorf("child begin = %+v", events[1])
	}
	for i := 1; i < len(events); i++ {
		if events[i].Seq <= events[i-1].Seq {
			t.Errorf("seq not increasing: %d then %d", events[i-1].Seq, events[i].Seq)
		}
	}
}

func TestRingWraps(t *testing.T) {
	ring := NewRingTracer(3, LevelPhase)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		Point(ring, ScopePhase, name, "")
	}
	got := ring.Snapshot()
	if len(got) != 3 || got[0].Name != "c" || got[2].Name != "e" {
		t.Fatalf("snapshot = %+v", got)
	}

	var buf bytes.Buffer
	if err := DumpRing(NewMultiTracer(LevelPhase, Nop, ring), &buf, FormatText); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != 3 {
		t.Errorf("dump:\n%s", buf.String())
	}
}

func TestErrorLevelOnlyRing(t *testing.T) {
	tr, err := New(Config{Level: LevelError, Mode: ModeStream})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := tr.(*RingTracer); !ok {
		t.Fatalf("error level should record into a ring, got %T", tr)
	}
}

func TestNopWhenOff(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr.Enabled() {
		t.Fatalf("tracer = %T, %v", tr, err)
	}
	s := Begin(tr, ScopeDriver, "x", nil)
	if s.ID() != 0 {
		t.Error("span enabled on nop tracer")
	}
	s.End("")
	if FromContext(context.Background()) != Nop {
		t.Error("empty context should give Nop")
	}
}
