// internal/state/howtoplay.go
package state

import (
	"breakout-party/internal/assets"
	"breakout-party/internal/audio"
	"breakout-party/internal/config"
	"breakout-party/internal/draw"
	"breakout-party/internal/input"
	"image/color"
)

// HowToPlay — стартовый экран с подсказкой по управлению.
type HowToPlay struct {
	Base
}

func NewHowToPlay() *HowToPlay { return &HowToPlay{} }

func (s *HowToPlay) Initialize() {
	s.music(audio.TitleMusic)
}

func (s *HowToPlay) Destroy() {}

func (s *HowToPlay) Update(dt float64) {
	if s.pressed(input.Ok) || s.pressed(input.Abort) {
		s.play(audio.MenuValidate)
		s.switchTo(s, NewMainMenu())
	}
}

func (s *HowToPlay) Draw(c draw.Canvas) bool {
	c.DrawSprite(assets.HowToPlay, 0, config.ScreenWidth/2, config.ScreenHeight/2, 0, 1, color.White)
	return false
}
