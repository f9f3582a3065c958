// internal/state/options.go
package state

import (
	"breakout-party/internal/audio"
	"breakout-party/internal/config"
	"breakout-party/internal/draw"
	"breakout-party/internal/input"
	"breakout-party/internal/ui"
	"breakout-party/internal/utils"
)

const (
	optionSound = iota
	optionMusic
)

// Options — громкость звуков и музыки. Значения сразу пишутся в
// сохранение и применяются к SoundManager.
type Options struct {
	Base
	selected int
	sliders  [2]ui.Slider
}

func NewOptions() *Options {
	return &Options{sliders: [2]ui.Slider{
		{Label: "Sound", Y: 100},
		{Label: "Music", Y: 120},
	}}
}

func (s *Options) Initialize() {}

func (s *Options) Destroy() {}

func (s *Options) Update(dt float64) {
	switch {
	case s.pressed(input.Abort), s.pressed(input.Ok):
		s.play(audio.MenuBack)
		s.switchTo(s, NewMainMenu())
	case s.pressed(input.Up), s.pressed(input.Down):
		s.selected = 1 - s.selected
		s.play(audio.MenuSelect)
	case s.pressed(input.Left):
		s.adjust(-config.VolumeStep)
	case s.pressed(input.Right):
		s.adjust(config.VolumeStep)
	}
}

func (s *Options) adjust(delta float64) {
	ctx := s.ctx()
	switch s.selected {
	case optionSound:
		v := utils.Clamp(ctx.Data.SoundVolume+delta, 0, 1)
		if v == ctx.Data.SoundVolume {
			return
		}
		ctx.Data.SoundVolume = v
		if ctx.Audio != nil {
			ctx.Audio.SetSoundVolume(v)
		}
		s.play(audio.MenuValidate)
	case optionMusic:
		v := utils.Clamp(ctx.Data.MusicVolume+delta, 0, 1)
		ctx.Data.MusicVolume = v
		if ctx.Audio != nil {
			ctx.Audio.SetMusicVolume(v)
		}
	}
}

// Volume возвращает значение выбранного ползунка.
func (s *Options) Volume(option int) float64 {
	if option == optionMusic {
		return s.ctx().Data.MusicVolume
	}
	return s.ctx().Data.SoundVolume
}

func (s *Options) Draw(c draw.Canvas) bool {
	t := s.Manager().Time()
	title := "Options"
	c.DrawText(title, draw.CenterX(c, title, draw.FontTitle, config.ScreenWidth), 70, draw.FontTitle, config.TextColor)
	for i := range s.sliders {
		s.sliders[i].Draw(c, s.Volume(i), i == s.selected, t)
	}
	return false
}
