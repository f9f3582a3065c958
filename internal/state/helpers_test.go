package state

import (
	"breakout-party/internal/audio"
	"breakout-party/internal/data"
	"breakout-party/internal/input"
	"breakout-party/internal/utils"
	"testing"
	"time"
)

var testNow = time.Date(2024, 5, 17, 20, 0, 0, 0, time.UTC)

type harness struct {
	t   *testing.T
	src *input.Scripted
	mgr *Manager
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	src := &input.Scripted{}
	mgr := NewManager(Context{
		Input: input.NewManager(src),
		Audio: audio.NewSoundManager(audio.Silent{}, nil),
		Data:  data.NewGamedata(testNow),
		RNG:   utils.NewPRNGService(7),
		Now:   func() time.Time { return testNow },
	})
	return &harness{t: t, src: src, mgr: mgr}
}

func (h *harness) tick() {
	h.mgr.Context().Input.Update()
	h.mgr.Update(1.0 / 60)
}

// press holds a for one frame and releases it so the next press is a new edge.
func (h *harness) press(actions ...input.Action) {
	for _, a := range actions {
		h.src.Hold(input.PlayerOne, a)
		h.tick()
		h.src.ReleaseAll()
		h.mgr.Context().Input.Update()
	}
}

func top[T Gamestate](h *harness) T {
	h.t.Helper()
	s, ok := h.mgr.Top().(T)
	if !ok {
		var zero T
		h.t.Fatalf("top state is %T, want %T", h.mgr.Top(), zero)
	}
	return s
}
