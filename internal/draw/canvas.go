// internal/draw/canvas.go
// Пакет draw — то, чем игровая логика рисует. Реализация на ebiten лежит в pkg/render.
package draw

import (
	"image/color"
	"math"
)

// Font — один из загруженных шрифтов
type Font int

const (
	FontText Font = iota
	FontTitle
)

// Canvas рисует спрайты и текст в логических пикселях поля.
type Canvas interface {
	// DrawSprite — кадр frame спрайта name с центром в (x, y).
	DrawSprite(name string, frame int, x, y, rotation, scale float64, tint color.Color)
	// DrawText — строка s, левый верхний угол в (x, y).
	DrawText(s string, x, y float64, font Font, tint color.Color)
	// MeasureText — ширина строки.
	MeasureText(s string, font Font) float64
}

// Pulse — мигающий серый выбранного пункта меню
func Pulse(t float64) color.Color {
	f := 0.7 + 0.3*math.Cos(t*10)
	v := uint8(f * 255)
	return color.RGBA{v, v, v, 255}
}

// Fade умножает альфу c на a из [0, 1]
func Fade(c color.Color, a float64) color.Color {
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A) * a)
	return n
}

// CenterX — x, при котором строка стоит по центру экрана ширины width
func CenterX(c Canvas, s string, font Font, width float64) float64 {
	return width/2 - c.MeasureText(s, font)/2
}
