// internal/state/breakout.go
package state

import (
	"breakout-party/internal/assets"
	"breakout-party/internal/audio"
	"breakout-party/internal/config"
	"breakout-party/internal/defs"
	"breakout-party/internal/draw"
	"breakout-party/internal/entity"
	"breakout-party/internal/event"
	"breakout-party/internal/input"
	"breakout-party/internal/physics"
	"breakout-party/internal/ui"
	"breakout-party/internal/utils"
	"image/color"
	"math"

	"github.com/google/uuid"
)

// Breakout — сама партия: четыре ракетки, мячи и сетка блоков.
type Breakout struct {
	Base
	Score int
	Lives int
	Level int

	session    uuid.UUID
	events     *event.Dispatcher
	playground *entity.Playground
	balls      []*entity.Ball

	lives, level, score *ui.Counter
}

func NewBreakout() *Breakout {
	return &Breakout{
		Lives: config.StartLives,
		Level: config.StartLevel,
		lives: ui.NewCounter("Lives", 2, 4, 1),
		level: ui.NewCounter("Level", 2, 130, 1),
		score: ui.NewCounter("Score", 6, 242, 1),
	}
}

func (s *Breakout) Initialize() {
	ctx := s.ctx()
	s.session = uuid.New()
	s.log = s.log.With("session", s.session.String())

	s.events = event.NewDispatcher()
	s.events.SubscribeAll(s,
		event.BallLost, event.BlockHit, event.BlockDestroyed,
		event.PaddleHit, event.LevelUp, event.GameOver)
	s.playground = entity.NewPlayground(entity.Env{
		RNG:    ctx.RNG,
		Input:  ctx.Input,
		Events: s.events,
	})

	s.spawnPaddles()
	s.music(audio.GameMusic)
	s.log.Info("game started")
	s.StartNextLevel()
}

func (s *Breakout) Destroy() {
	s.playground.Destroy()
	s.events.Clear()
	s.balls = nil
}

// Playground — площадка партии, для тестов и отладки.
func (s *Breakout) Playground() *entity.Playground { return s.playground }

// Balls — мячи, за которыми следит партия.
func (s *Breakout) Balls() []*entity.Ball { return s.balls }

func (s *Breakout) Update(dt float64) {
	if s.Lives == 0 {
		s.gameOver()
		return
	}

	s.playground.Update(dt)

	if len(s.balls) == 0 {
		s.Lives--
		s.log.Debug("life lost", "lives", s.Lives)
		s.SpawnBall()
	}

	if entity.Count(s.playground, (*entity.Block).Alive) == 0 {
		s.StartNextLevel()
	}

	if s.pressed(input.Abort) {
		s.log.Info("game aborted", "level", s.Level, "score", s.Score)
		s.play(audio.MenuBack)
		s.switchTo(s, NewMainMenu())
	}
}

func (s *Breakout) gameOver() {
	s.events.Dispatch(event.Event{Type: event.GameOver, Data: s})
	s.log.Info("game over", "level", s.Level, "score", s.Score)
	s.switchTo(s, NewHighscore(s.Level, s.Score))
}

// StartNextLevel поднимает уровень, дает жизнь, мяч и новую сетку блоков.
func (s *Breakout) StartNextLevel() {
	s.Level++
	s.Lives++
	s.SpawnBall()
	n := s.SpawnBlocks()
	s.log.Info("level started", "level", s.Level, "lives", s.Lives, "blocks", n)
	if s.Level > 1 {
		s.events.Dispatch(event.Event{Type: event.LevelUp, Data: s})
	}
}

// SpawnBall запускает мяч над ракеткой первого игрока.
func (s *Breakout) SpawnBall() {
	x := config.ScreenWidth / 2.0
	for p := range entity.Entities[*entity.Paddle](s.playground) {
		if p.Player == input.PlayerOne {
			x, _ = p.PixelPosition()
			break
		}
	}
	s.launchBall(x, config.BallSpawnY)
}

func (s *Breakout) launchBall(x, y float64) *entity.Ball {
	ball := entity.NewBall()
	s.playground.Add(ball)
	ball.SetPixelPosition(x, y)
	ball.Launch(physics.Vec{X: s.ctx().RNG.Float64() - 0.5, Y: -0.8})
	s.balls = append(s.balls, ball)
	return ball
}

// SpawnBlocks заполняет сетку, случайно оставляя пустые клетки.
// Возвращает число созданных блоков.
func (s *Breakout) SpawnBlocks() int {
	rng := s.ctx().RNG
	spec := assets.MustLookup(assets.Block)
	maxHealth := 1 + int(math.Floor(float64(s.Level)*config.BlockHealthScale))
	n := 0
	for x := 0; x < config.BlockColumns; x++ {
		for y := 0; y < config.BlockRows; y++ {
			if rng.Chance(config.BlockSkipChance) {
				continue
			}
			block := entity.NewBlock(rng.Range(1, maxHealth))
			s.playground.Add(block)
			block.SetPixelPosition(
				config.BlockOriginX+float64(x*spec.Width),
				config.BlockOriginY+float64(y*spec.Height))
			n++
		}
	}
	return n
}

func (s *Breakout) spawnPaddles() {
	for _, slot := range defs.PaddleSlots {
		p := entity.NewPaddle(slot.Player, slot.Computer)
		s.playground.Add(p)
		p.SetPixelPosition(slot.X, slot.Y)
		p.Body().SetAngle(utils.DegToRad(slot.Rotation))
	}
}

func (s *Breakout) OnEvent(e event.Event) {
	switch e.Type {
	case event.BlockDestroyed:
		s.Score++
		s.play(audio.BlockDestroy)
		if block, ok := e.Data.(*entity.Block); ok && s.ctx().RNG.Chance(config.ExtraBallChance) {
			x, y := block.PixelPosition()
			s.launchBall(x, y)
			s.log.Debug("extra ball", "balls", len(s.balls))
		}
	case event.BallLost:
		if ball, ok := e.Data.(*entity.Ball); ok {
			s.untrack(ball)
		}
		s.play(audio.BallLost)
	case event.BlockHit:
		s.play(audio.BlockHit)
	case event.PaddleHit:
		s.play(audio.PaddleHit)
	case event.LevelUp:
		s.play(audio.LevelUp)
	case event.GameOver:
		s.play(audio.GameOver)
	}
}

func (s *Breakout) untrack(ball *entity.Ball) {
	for i, b := range s.balls {
		if b == ball {
			s.balls = append(s.balls[:i], s.balls[i+1:]...)
			return
		}
	}
}

func (s *Breakout) Draw(c draw.Canvas) bool {
	c.DrawSprite(assets.Background, 0, config.ScreenWidth/2, config.ScreenHeight/2, 0, 1, color.White)
	s.playground.Draw(c)
	s.lives.Draw(c, s.Lives)
	s.level.Draw(c, s.Level)
	s.score.Draw(c, s.Score)
	return false
}
