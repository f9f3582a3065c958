// internal/state/highscore.go
package state

import (
	"breakout-party/internal/audio"
	"breakout-party/internal/config"
	"breakout-party/internal/draw"
	"breakout-party/internal/input"
	"breakout-party/internal/ui"
	"fmt"
	"image/color"
)

// Highscore показывает таблицу рекордов. После партии результат
// вставляется в таблицу, и игрок вводит имя.
type Highscore struct {
	Base
	Level int
	Score int

	record bool
	entry  int // индекс редактируемой строки, -1 если имя не вводится
	name   *ui.NameEntry
}

// NewHighscore — таблица после партии с результатом level/score.
func NewHighscore(level, score int) *Highscore {
	return &Highscore{Level: level, Score: score, record: true, entry: -1}
}

// NewHighscoreTable — просмотр таблицы из главного меню.
func NewHighscoreTable() *Highscore {
	return &Highscore{entry: -1}
}

func (s *Highscore) Initialize() {
	if !s.record {
		return
	}
	ctx := s.ctx()
	s.entry = ctx.Data.Insert(s.Level, s.Score, ctx.Now())
	if s.entry >= 0 {
		s.name = ui.NewNameEntry(ctx.Data.Highscores[s.entry].Name)
		s.log.Info("new highscore", "rank", s.entry+1, "level", s.Level, "score", s.Score)
	}
}

func (s *Highscore) Destroy() {}

// Editing — игрок еще вводит имя.
func (s *Highscore) Editing() bool { return s.entry >= 0 }

func (s *Highscore) Update(dt float64) {
	if s.Editing() {
		s.edit()
	}

	if s.pressed(input.Abort) || s.pressed(input.Ok) {
		if s.Editing() {
			s.log.Info("name entered", "name", s.name.String())
			s.play(audio.MenuValidate)
			s.entry = -1
			return
		}
		s.play(audio.MenuBack)
		s.switchTo(s, NewMainMenu())
	}
}

func (s *Highscore) edit() {
	moved := false
	switch {
	case s.pressed(input.Up):
		s.name.Up()
		moved = true
	case s.pressed(input.Down):
		s.name.Down()
		moved = true
	case s.pressed(input.Left):
		moved = s.name.Left()
	case s.pressed(input.Right):
		moved = s.name.Right()
	}
	if moved {
		s.play(audio.MenuSelect)
		s.ctx().Data.Highscores[s.entry].Name = s.name.String()
	}
}

func (s *Highscore) Draw(c draw.Canvas) bool {
	t := s.Manager().Time()
	title := "Highscores"
	c.DrawText(title, draw.CenterX(c, title, draw.FontTitle, config.ScreenWidth), 15, draw.FontTitle, config.TextColor)

	c.DrawText("Name", 40, 40, draw.FontText, config.TextColor)
	c.DrawText("Date", 80, 40, draw.FontText, config.TextColor)
	c.DrawText("Level", 162, 40, draw.FontText, config.TextColor)
	c.DrawText("Score", 220, 40, draw.FontText, config.TextColor)

	for i, h := range s.ctx().Data.Highscores {
		y := float64(i)*20 + 60
		var tint color.Color = config.TextColor
		if s.Editing() && i != s.entry {
			tint = config.DimTextColor
		}
		if i == s.entry {
			s.name.Draw(c, 40, y, t)
		} else {
			c.DrawText(h.Name, 40, y, draw.FontText, tint)
		}
		c.DrawText(h.Date.Format("2006-01-02"), 80, y, draw.FontText, tint)
		c.DrawText(fmt.Sprintf("%02d", h.Level), 180, y, draw.FontText, tint)
		c.DrawText(fmt.Sprintf("%06d", h.Score), 220, y, draw.FontText, tint)
	}

	if s.Editing() {
		var blink color.Color = config.TextColor
		if int(t)%2 == 1 {
			blink = config.HighlightColor
		}
		msg := "New Highscore!"
		c.DrawText(msg, draw.CenterX(c, msg, draw.FontTitle, config.ScreenWidth), 210, draw.FontTitle, blink)
	}
	return false
}
