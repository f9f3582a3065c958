// internal/state/gamestate.go
package state

import (
	"breakout-party/internal/audio"
	"breakout-party/internal/data"
	"breakout-party/internal/draw"
	"breakout-party/internal/input"
	"breakout-party/internal/utils"
	"time"

	"github.com/charmbracelet/log"
)

// Gamestate — экран игры: меню, партия, таблица рекордов и т.д.
// Набор закрыт: реализовать интерфейс можно, только встроив Base.
type Gamestate interface {
	Initialize()
	Update(dt float64)
	// Draw возвращает true, если состояние под ним тоже должно рисоваться.
	Draw(c draw.Canvas) bool
	Destroy()
	base() *Base
}

// Context — общие сервисы, доступные всем состояниям.
type Context struct {
	Input *input.Manager
	Audio *audio.SoundManager
	Data  *data.Gamedata
	RNG   *utils.PRNGService
	Log   *log.Logger
	Now   func() time.Time
}

// Base — общая часть всех состояний: ссылка на менеджер и логгер.
type Base struct {
	manager *Manager
	log     *log.Logger
}

func (b *Base) base() *Base { return b }

// Manager возвращает менеджер, в который добавлено состояние.
func (b *Base) Manager() *Manager { return b.manager }

func (b *Base) ctx() *Context { return &b.manager.ctx }

// pressed — действие первого игрока, которым управляются все меню.
func (b *Base) pressed(a input.Action) bool {
	return b.manager.ctx.Input.IsActionPressed(input.PlayerOne, a)
}

func (b *Base) play(e audio.SoundEffect) {
	if a := b.manager.ctx.Audio; a != nil {
		a.Play(e)
	}
}

func (b *Base) music(m audio.MusicTrack) {
	if a := b.manager.ctx.Audio; a != nil {
		a.PlayMusic(m)
	}
}

// switchTo снимает self со стека и кладет next.
func (b *Base) switchTo(self, next Gamestate) {
	m := b.manager
	m.Remove(self)
	m.Add(next)
}
