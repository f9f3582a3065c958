// internal/state/mainmenu.go
package state

import (
	"breakout-party/internal/assets"
	"breakout-party/internal/audio"
	"breakout-party/internal/config"
	"breakout-party/internal/draw"
	"breakout-party/internal/input"
	"breakout-party/internal/ui"
	"image/color"
	"math"
)

const (
	entryStart      = "Start Local Game"
	entryHighscores = "Highscores"
	entryOptions    = "Options"
	entryCredits    = "Watch Credits"
	entryEnd        = "End Game"
)

// MainMenu — главное меню. Снятие его со стека без замены завершает игру.
type MainMenu struct {
	Base
	menu *ui.Menu
}

func NewMainMenu() *MainMenu {
	return &MainMenu{
		menu: ui.NewMenu(150, 16, entryStart, entryHighscores, entryOptions, entryCredits, entryEnd),
	}
}

func (s *MainMenu) Initialize() {
	s.music(audio.TitleMusic)
}

func (s *MainMenu) Destroy() {}

// Selected — выделенный пункт.
func (s *MainMenu) Selected() string { return s.menu.Current() }

func (s *MainMenu) Update(dt float64) {
	switch {
	case s.pressed(input.Up):
		if s.menu.Prev() {
			s.play(audio.MenuSelect)
		}
	case s.pressed(input.Down):
		if s.menu.Next() {
			s.play(audio.MenuSelect)
		}
	case s.pressed(input.Ok):
		s.activate()
	case s.pressed(input.Abort):
		s.quit()
	}
}

func (s *MainMenu) activate() {
	s.play(audio.MenuValidate)
	switch s.menu.Current() {
	case entryStart:
		s.switchTo(s, NewBreakout())
	case entryHighscores:
		s.switchTo(s, NewHighscoreTable())
	case entryOptions:
		s.switchTo(s, NewOptions())
	case entryCredits:
		s.switchTo(s, NewCredits())
	case entryEnd:
		s.quit()
	}
}

func (s *MainMenu) quit() {
	s.log.Info("leaving main menu")
	s.play(audio.MenuBack)
	s.Manager().Remove(s)
}

func (s *MainMenu) Draw(c draw.Canvas) bool {
	t := s.Manager().Time()
	c.DrawSprite(assets.Background, 0, config.ScreenWidth/2, config.ScreenHeight/2, 0, 1, color.White)
	c.DrawSprite(assets.Title, 0,
		160+20*math.Cos(t*0.5),
		60+15*math.Sin(t*0.5),
		0.5*math.Cos(t),
		1+0.2*math.Sin(t),
		color.White)
	s.menu.Draw(c, t)
	c.DrawText(config.Version, 5, 225, draw.FontText, config.DimTextColor)
	return false
}
