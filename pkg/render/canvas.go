// pkg/render/canvas.go
package render

import (
	"breakout-party/internal/draw"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Canvas рисует спрайты и текст на экран ebiten. Цель меняется каждый
// кадр через Begin.
type Canvas struct {
	target  *ebiten.Image
	sprites *SpriteCache
	fonts   *Fonts
}

var _ draw.Canvas = (*Canvas)(nil)

func NewCanvas(sprites *SpriteCache, fonts *Fonts) *Canvas {
	return &Canvas{sprites: sprites, fonts: fonts}
}

// Begin назначает изображение, на которое пойдет отрисовка кадра.
func (c *Canvas) Begin(target *ebiten.Image) {
	c.target = target
}

func (c *Canvas) DrawSprite(name string, frame int, x, y, rotation, scale float64, tint color.Color) {
	img, w, h, ok := c.sprites.Frame(name, frame)
	if !ok || c.target == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	op.GeoM.Rotate(rotation)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(tint)
	op.Filter = ebiten.FilterNearest
	c.target.DrawImage(img, op)
}

func (c *Canvas) DrawText(s string, x, y float64, font draw.Font, tint color.Color) {
	if c.target == nil {
		return
	}
	op := &text.DrawOptions{}
	k := c.fonts.scaleOf(font)
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(tint)
	text.Draw(c.target, s, c.fonts.face, op)
}

func (c *Canvas) MeasureText(s string, font draw.Font) float64 {
	return c.fonts.Advance(s, font)
}

// frameRect — прямоугольник кадра на листе, кадры идут слева направо.
func frameRect(w, h, frames, frame int) image.Rectangle {
	if frame < 0 {
		frame = 0
	}
	if frame >= frames {
		frame = frames - 1
	}
	return image.Rect(frame*w, 0, (frame+1)*w, h)
}
