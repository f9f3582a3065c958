// internal/ui/counter.go
package ui

import (
	"breakout-party/internal/config"
	"breakout-party/internal/draw"
	"fmt"
	"image/color"
)

// Counter — надпись вида "Score: 000042" на HUD.
type Counter struct {
	Label  string
	Digits int
	X, Y   float64
	Color  color.Color
}

func NewCounter(label string, digits int, x, y float64) *Counter {
	return &Counter{Label: label, Digits: digits, X: x, Y: y, Color: config.TextColor}
}

// Text форматирует значение с ведущими нулями.
func (c *Counter) Text(value int) string {
	return fmt.Sprintf("%s: %0*d", c.Label, c.Digits, value)
}

// Draw рисует счетчик с тенью в один пиксель.
func (c *Counter) Draw(cv draw.Canvas, value int) {
	s := c.Text(value)
	cv.DrawText(s, c.X+1, c.Y+1, draw.FontText, config.BackgroundColor)
	cv.DrawText(s, c.X, c.Y, draw.FontText, c.Color)
}
