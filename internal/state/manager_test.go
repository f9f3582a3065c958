package state

import (
	"breakout-party/internal/draw"
	"slices"
	"testing"
)

type stub struct {
	Base
	id     string
	opaque bool
	calls  *[]string
}

func (s *stub) record(what string) { *s.calls = append(*s.calls, what+":"+s.id) }

func (s *stub) Initialize()    { s.record("init") }
func (s *stub) Destroy()       { s.record("destroy") }
func (s *stub) Update(float64) { s.record("update") }
func (s *stub) Draw(draw.Canvas) bool {
	s.record("draw")
	return !s.opaque
}

func TestManagerStack(t *testing.T) {
	var calls []string
	m := NewManager(Context{})
	a := &stub{id: "a", calls: &calls}
	b := &stub{id: "b", calls: &calls}

	if !m.IsEmpty() || m.Top() != nil {
		t.Fatal("new manager should be empty")
	}
	m.Add(a)
	m.Add(b)
	if m.Len() != 2 || m.Top() != b {
		t.Fatalf("Len = %d, Top = %v", m.Len(), m.Top())
	}
	if a.Manager() != m || b.Manager() != m {
		t.Error("manager not bound")
	}

	m.Update(0.5)
	m.Update(0.25)
	if m.Time() != 0.75 {
		t.Errorf("Time = %v", m.Time())
	}

	m.Remove(&stub{id: "stranger", calls: &calls})
	m.Remove(b)
	if m.Top() != a {
		t.Error("a should be on top after removing b")
	}

	want := []string{"init:a", "init:b", "update:b", "update:b", "destroy:b"}
	if !slices.Equal(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
}

func TestManagerDrawStopsAtOpaqueState(t *testing.T) {
	var calls []string
	m := NewManager(Context{})
	m.Add(&stub{id: "bottom", calls: &calls})
	m.Add(&stub{id: "opaque", opaque: true, calls: &calls})
	m.Add(&stub{id: "overlay", calls: &calls})
	calls = nil

	m.Draw(&draw.Recorder{})
	want := []string{"draw:overlay", "draw:opaque"}
	if !slices.Equal(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
}

func TestManagerUpdateOnEmptyStack(t *testing.T) {
	m := NewManager(Context{})
	m.Update(1)
	m.Draw(&draw.Recorder{})
	if m.Time() != 1 {
		t.Errorf("Time = %v", m.Time())
	}
}
