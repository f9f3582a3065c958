// internal/entity/ball.go
package entity

import (
	"breakout-party/internal/assets"
	"breakout-party/internal/config"
	"breakout-party/internal/draw"
	"breakout-party/internal/event"
	"breakout-party/internal/physics"
	"image/color"
)

// Ball — мяч. Держит постоянную скорость Speed.
type Ball struct {
	Base
	Speed float64 // м/с
}

func NewBall() *Ball {
	return &Ball{Speed: config.BallSpeed}
}

func (b *Ball) Initialize() {
	spec := assets.MustLookup(assets.Ball)
	radius := float64(spec.Width) * 0.5 * config.MeterPerPixel

	b.body = b.playground.world.CreateCircle(radius, 1, physics.Dynamic, b)
	b.body.SetIgnoreGravity(true)
	b.body.SetCategories(physics.CategoryBall)
	b.body.SetCollidesWith(physics.CategoryBall | physics.CategoryBlock | physics.CategoryPaddle)
	b.body.MakeBouncy()
}

func (b *Ball) Destroy() {
	b.destroyBody()
}

// Launch задает направление полета; длина dir не важна.
func (b *Ball) Launch(dir physics.Vec) {
	b.body.SetLinearVelocity(b.normalize(dir).Mult(b.Speed))
}

func (b *Ball) Update(dt float64) {
	if b.OutOfBounds() {
		p := b.playground
		b.dispatch(event.BallLost, b)
		p.Remove(b)
		return
	}

	rng := b.playground.env.RNG
	v := b.body.LinearVelocity()
	var dir physics.Vec
	if v.LengthSq() < config.BallRestSpeedSq {
		// Остановившийся мяч запускаем заново, преимущественно вверх
		dir = physics.Vec{X: rng.Float64() - 0.5, Y: -0.8}
	} else {
		// Небольшой шум, чтобы мяч не застревал между стенками навсегда
		dir = v.Normalize()
		dir.X += (rng.Float64() - 0.5) * config.BallJitter
		dir.Y += (rng.Float64() - 0.5) * config.BallJitter
	}
	b.body.SetLinearVelocity(b.normalize(dir).Mult(b.Speed))
}

// normalize подменяет нулевой вектор случайным направлением.
func (b *Ball) normalize(dir physics.Vec) physics.Vec {
	if dir.LengthSq() < 1e-12 {
		x, y := b.playground.env.RNG.Direction()
		return physics.Vec{X: x, Y: y}
	}
	return dir.Normalize()
}

func (b *Ball) Draw(c draw.Canvas) {
	x, y := b.PixelPosition()
	c.DrawSprite(assets.Ball, 0, x, y, b.body.Angle(), 1, color.White)
}
