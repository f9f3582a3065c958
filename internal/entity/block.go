// internal/entity/block.go
package entity

import (
	"breakout-party/internal/assets"
	"breakout-party/internal/config"
	"breakout-party/internal/defs"
	"breakout-party/internal/draw"
	"breakout-party/internal/event"
	"breakout-party/internal/physics"
	"breakout-party/internal/utils"
	"image/color"
	"math"
)

// Block — разрушаемый блок. Пока здоровье больше нуля, стоит на месте;
// на нуле перестает сталкиваться и падает за пределы поля.
type Block struct {
	Base
	Health    int
	MaxHealth int
	Tint      color.RGBA

	home      physics.Vec
	homeAngle float64
}

func NewBlock(health int) *Block {
	if health < 1 {
		health = 1
	}
	return &Block{Health: health, MaxHealth: health, Tint: color.RGBA{255, 255, 255, 255}}
}

func (b *Block) Initialize() {
	spec := assets.MustLookup(assets.Block)
	rng := b.playground.env.RNG
	b.Tint = defs.BlockPalette[rng.Intn(len(defs.BlockPalette))]

	b.body = b.playground.world.CreateRectangle(
		float64(spec.Width)*config.MeterPerPixel,
		float64(spec.Height)*config.MeterPerPixel,
		1,
		physics.Dynamic,
		b)
	b.body.SetIgnoreGravity(true)
	b.body.SetCategories(physics.CategoryBlock)
	b.body.SetCollidesWith(physics.CategoryBall)
	b.body.MakeBouncy()
	b.home = b.body.Position()
}

func (b *Block) Destroy() {
	b.destroyBody()
}

// SetPixelPosition ставит блок и запоминает точку, в которой он держится.
func (b *Block) SetPixelPosition(x, y float64) {
	b.Base.SetPixelPosition(x, y)
	b.home = b.body.Position()
	b.homeAngle = b.body.Angle()
}

// Alive — блок еще не разбит.
func (b *Block) Alive() bool { return b.Health > 0 }

func (b *Block) Update(dt float64) {
	if b.Health > 0 {
		b.body.SetLinearVelocity(physics.Vec{})
		b.body.SetAngularVelocity(0)
		b.body.SetPosition(b.home)
		b.body.SetAngle(b.homeAngle)
		return
	}
	if b.OutOfBounds() {
		b.playground.Remove(b)
	}
}

func (b *Block) OnCollision(other Entity) {
	if b.Health <= 0 {
		return
	}
	b.Health--
	if b.Health > 0 {
		b.dispatch(event.BlockHit, b)
		return
	}

	b.dispatch(event.BlockDestroyed, b)
	b.body.SetCategories(physics.CategoryNone)
	b.body.SetIgnoreGravity(false)
}

// Frame — кадр листа по оставшемуся здоровью.
func (b *Block) Frame() int {
	f := math.Floor(3 - float64(b.Health)/float64(b.MaxHealth)*3)
	return utils.ClampInt(int(f), 0, config.BlockFrames-1)
}

func (b *Block) Draw(c draw.Canvas) {
	x, y := b.PixelPosition()
	alpha := 1 - b.body.LinearVelocity().LengthSq()*config.BlockFadeFactor
	c.DrawSprite(assets.Block, b.Frame(), x, y, b.body.Angle(), 1, draw.Fade(b.Tint, alpha))
}
