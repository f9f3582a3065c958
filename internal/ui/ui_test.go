package ui

import (
	"breakout-party/internal/draw"
	"testing"
)

func TestMenuClampsByDefault(t *testing.T) {
	m := NewMenu(100, 16, "Start", "Options", "Quit")
	if m.Prev() || m.Current() != "Start" {
		t.Errorf("Prev from first moved to %q", m.Current())
	}
	m.Next()
	m.Next()
	if m.Next() || m.Current() != "Quit" {
		t.Errorf("Next from last moved to %q", m.Current())
	}
}

func TestMenuWraps(t *testing.T) {
	m := NewMenu(100, 16, "Start", "Options", "Quit")
	m.Wrap = true
	if !m.Prev() || m.Current() != "Quit" {
		t.Errorf("Prev from first = %q", m.Current())
	}
	m.Next()
	m.Next()
	if m.Current() != "Options" {
		t.Errorf("Current = %q", m.Current())
	}

	empty := NewMenu(0, 0)
	empty.Wrap = true
	if empty.Next() || empty.Prev() || empty.Current() != "" {
		t.Error("empty menu should not move")
	}
}

func TestMenuDrawsEveryItem(t *testing.T) {
	m := NewMenu(100, 16, "Start", "Quit")
	rec := &draw.Recorder{}
	m.Draw(rec, 0)
	for _, item := range m.Items {
		if !rec.HasText(item) {
			t.Errorf("%q not drawn", item)
		}
	}
}

func TestCounterText(t *testing.T) {
	tests := []struct {
		label  string
		digits int
		value  int
		want   string
	}{
		{"Lives", 2, 4, "Lives: 04"},
		{"Level", 2, 12, "Level: 12"},
		{"Score", 6, 42, "Score: 000042"},
		{"Score", 6, 1234567, "Score: 1234567"},
	}
	for _, tt := range tests {
		c := NewCounter(tt.label, tt.digits, 0, 0)
		if got := c.Text(tt.value); got != tt.want {
			t.Errorf("Text(%d) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestSliderBar(t *testing.T) {
	s := &Slider{Label: "Sound"}
	tests := map[float64]string{
		0:    "Sound [----------]",
		0.5:  "Sound [#####-----]",
		1:    "Sound [##########]",
		1.5:  "Sound [##########]",
		0.05: "Sound [#---------]",
	}
	for v, want := range tests {
		if got := s.Bar(v); got != want {
			t.Errorf("Bar(%v) = %q, want %q", v, got, want)
		}
	}
}

func TestNameEntry(t *testing.T) {
	n := NewNameEntry("AAA")
	n.Down()
	if n.String() != "ZAA" {
		t.Errorf("Down from A = %q", n.String())
	}
	n.Up()
	n.Up()
	if n.String() != "BAA" {
		t.Errorf("Up twice = %q", n.String())
	}

	if n.Left() || n.Cursor != 0 {
		t.Error("cursor moved past the first letter")
	}
	n.Right()
	n.Right()
	if n.Right() || n.Cursor != 2 {
		t.Errorf("Cursor = %d, want 2", n.Cursor)
	}
	n.Up()
	if n.String() != "BAB" {
		t.Errorf("String = %q", n.String())
	}
}
