package assets

import (
	"strings"
	"testing"
)

func TestSpritesAreValid(t *testing.T) {
	for _, s := range All() {
		if s.Width <= 0 || s.Height <= 0 || s.Frames <= 0 {
			t.Errorf("sprite %q has invalid size %+v", s.Name, s)
		}
	}
	if MustLookup(Block).Frames != 4 {
		t.Error("block sheet should have four health frames")
	}
	if _, ok := Lookup("Missing"); ok {
		t.Error("unknown sprite found")
	}
}

func TestCredits(t *testing.T) {
	lines := Credits()
	if len(lines) < 3 {
		t.Fatalf("credits too short: %v", lines)
	}
	if !strings.HasPrefix(lines[0], "[") {
		t.Errorf("first line should be a heading, got %q", lines[0])
	}
}
