// internal/entity/paddle.go
package entity

import (
	"breakout-party/internal/assets"
	"breakout-party/internal/config"
	"breakout-party/internal/draw"
	"breakout-party/internal/event"
	"breakout-party/internal/input"
	"breakout-party/internal/physics"
	"breakout-party/internal/utils"
	"image/color"
	"math"
)

// Paddle — ракетка игрока. Двигается только вдоль своей оси:
// X для первого и второго игрока, Y для третьего и четвертого.
type Paddle struct {
	Base
	Player   input.Player
	Computer bool    // true — управляет компьютер
	Speed    float64 // м/с
}

func NewPaddle(player input.Player, computer bool) *Paddle {
	return &Paddle{Player: player, Computer: computer, Speed: config.PaddleSpeed}
}

func (p *Paddle) Initialize() {
	spec := assets.MustLookup(assets.Paddle)

	p.body = p.playground.world.CreateRoundedRectangle(
		float64(spec.Width)*config.MeterPerPixel,
		float64(spec.Height)*config.MeterPerPixel,
		config.PaddleCornerR*config.MeterPerPixel,
		1,
		physics.Kinematic,
		p)
	p.body.SetIgnoreGravity(true)
	p.body.SetCategories(physics.CategoryPaddle)
	p.body.SetCollidesWith(physics.CategoryBall)
	p.body.MakeBouncy()
}

func (p *Paddle) Destroy() {
	p.destroyBody()
}

func (p *Paddle) Update(dt float64) {
	if p.Computer {
		p.steerComputer(dt)
	} else {
		p.steerHuman()
	}
	p.keepInside()
}

func (p *Paddle) steerHuman() {
	in := p.playground.env.Input
	d := 0.0
	if in != nil {
		if in.IsActionActive(p.Player, input.Down) {
			d += p.Speed
		}
		if in.IsActionActive(p.Player, input.Left) {
			d -= p.Speed
		}
		if in.IsActionActive(p.Player, input.Right) {
			d += p.Speed
		}
		if in.IsActionActive(p.Player, input.Up) {
			d -= p.Speed
		}
	}
	d = utils.Clamp(d, -p.Speed, p.Speed)
	p.body.SetLinearVelocity(p.along(d))
}

// steerComputer ведет ракетку к ближайшему мячу с учетом его скорости.
func (p *Paddle) steerComputer(dt float64) {
	pos := p.body.Position()
	closest := math.MaxFloat64
	var target physics.Vec
	found := false
	for ball := range Entities[*Ball](p.playground) {
		bb := ball.Body()
		if bb == nil {
			continue
		}
		predicted := bb.Position().Add(bb.LinearVelocity().Mult(dt))
		if d := pos.DistanceSq(predicted); d < closest {
			closest, target, found = d, predicted, true
		}
	}
	if !found {
		return
	}

	delta := target.Y - pos.Y
	if p.Player.Horizontal() {
		delta = target.X - pos.X
	}
	speed := 0.0
	if math.Abs(delta) > config.PaddleDeadband*config.MeterPerPixel {
		speed = math.Copysign(p.Speed, delta)
	}
	p.body.SetLinearVelocity(p.along(speed))
}

// keepInside разворачивает ракетку у краев поля.
func (p *Paddle) keepInside() {
	x, y := p.PixelPosition()
	if p.Player.Horizontal() {
		if x < config.PaddleEdgeMinX {
			p.body.SetLinearVelocity(p.along(p.Speed))
		} else if x > config.PaddleEdgeMaxX {
			p.body.SetLinearVelocity(p.along(-p.Speed))
		}
		return
	}
	if y < config.PaddleEdgeMinY {
		p.body.SetLinearVelocity(p.along(p.Speed))
	} else if y > config.PaddleEdgeMaxY {
		p.body.SetLinearVelocity(p.along(-p.Speed))
	}
}

func (p *Paddle) along(v float64) physics.Vec {
	if p.Player.Horizontal() {
		return physics.Vec{X: v}
	}
	return physics.Vec{Y: v}
}

func (p *Paddle) OnCollision(other Entity) {
	if _, ok := other.(*Ball); ok {
		p.dispatch(event.PaddleHit, p)
	}
}

func (p *Paddle) Draw(c draw.Canvas) {
	x, y := p.PixelPosition()
	c.DrawSprite(assets.Paddle, 0, x, y, p.body.Angle(), 1, color.White)
}
