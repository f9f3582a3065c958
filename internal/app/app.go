// internal/app/app.go
package app

import (
	"breakout-party/internal/config"
	"breakout-party/internal/input"
	"breakout-party/internal/state"
	"breakout-party/pkg/render"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game связывает цикл ebiten со стеком состояний.
type Game struct {
	states *state.Manager
	input  *input.Manager
	canvas *render.Canvas
	logger *log.Logger

	lastUpdate time.Time
	frames     uint64
}

var _ ebiten.Game = (*Game)(nil)

func NewGame(states *state.Manager, in *input.Manager, canvas *render.Canvas, logger *log.Logger) *Game {
	return &Game{
		states:     states,
		input:      in,
		canvas:     canvas,
		logger:     logger,
		lastUpdate: time.Now(),
	}
}

// Update опрашивает ввод и обновляет верхнее состояние. Пустой стек
// завершает цикл.
func (g *Game) Update() error {
	now := time.Now()
	dt := now.Sub(g.lastUpdate).Seconds()
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}
	g.lastUpdate = now
	g.frames++

	g.input.Update()
	g.states.Update(dt)
	if g.states.IsEmpty() {
		g.logger.Info("no states left, quitting", "frames", g.frames)
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.canvas.Begin(screen)
	g.states.Draw(g.canvas)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}
