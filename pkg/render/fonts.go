// pkg/render/fonts.go
package render

import (
	"breakout-party/internal/draw"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Fonts — растровый шрифт 7x13; заголовочный рисуется им же в двойном масштабе.
type Fonts struct {
	face  text.Face
	scale [2]float64
}

func NewFonts() *Fonts {
	return &Fonts{
		face:  text.NewGoXFace(basicfont.Face7x13),
		scale: [2]float64{draw.FontText: 1, draw.FontTitle: 2},
	}
}

func (f *Fonts) scaleOf(font draw.Font) float64 {
	if font < 0 || int(font) >= len(f.scale) {
		return 1
	}
	return f.scale[font]
}

// Advance — ширина строки в логических пикселях.
func (f *Fonts) Advance(s string, font draw.Font) float64 {
	return text.Advance(s, f.face) * f.scaleOf(font)
}
