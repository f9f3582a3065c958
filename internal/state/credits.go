// internal/state/credits.go
package state

import (
	"breakout-party/internal/assets"
	"breakout-party/internal/audio"
	"breakout-party/internal/config"
	"breakout-party/internal/draw"
	"breakout-party/internal/input"
	"math"
)

// Credits прокручивает титры снизу вверх.
type Credits struct {
	Base
	lines    []string
	position float64 // строк от начала
}

func NewCredits() *Credits { return &Credits{} }

func (s *Credits) Initialize() {
	s.lines = assets.Credits()
}

func (s *Credits) Destroy() {}

// Finished — последняя строка ушла за верхний край.
func (s *Credits) Finished() bool {
	return (float64(len(s.lines))-s.position)*config.CreditsLineHeight+config.ScreenHeight < 0
}

func (s *Credits) Update(dt float64) {
	s.position += dt * config.CreditsScrollSpeed
	if s.Finished() || s.pressed(input.Ok) || s.pressed(input.Abort) {
		s.play(audio.MenuBack)
		s.switchTo(s, NewMainMenu())
	}
}

func (s *Credits) Draw(c draw.Canvas) bool {
	t := s.Manager().Time()
	for i, line := range s.lines {
		y := (float64(i)-s.position)*config.CreditsLineHeight + config.ScreenHeight
		if line == "" || y <= -config.CreditsLineHeight || y >= config.ScreenHeight {
			continue
		}
		font := draw.FontText
		if line[0] == '[' {
			font = draw.FontTitle
		}
		sway := math.Cos(t+float64(i)*0.2) * 24
		c.DrawText(line, draw.CenterX(c, line, font, config.ScreenWidth)+sway, y, font, config.TextColor)
	}
	return false
}
