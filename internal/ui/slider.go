// internal/ui/slider.go
package ui

import (
	"breakout-party/internal/config"
	"breakout-party/internal/draw"
	"breakout-party/internal/utils"
	"image/color"
	"strings"
)

const sliderCells = 10

// Slider показывает значение 0..1 полосой из десяти ячеек.
type Slider struct {
	Label string
	Y     float64
}

// Bar строит полосу вида "Music [######----]".
func (s *Slider) Bar(value float64) string {
	filled := int(utils.Clamp(value, 0, 1)*sliderCells + 0.5)
	return s.Label + " [" + strings.Repeat("#", filled) + strings.Repeat("-", sliderCells-filled) + "]"
}

func (s *Slider) Draw(c draw.Canvas, value float64, selected bool, t float64) {
	text := s.Bar(value)
	var tint color.Color = config.DimTextColor
	if selected {
		tint = draw.Pulse(t)
	}
	c.DrawText(text, draw.CenterX(c, text, draw.FontText, config.ScreenWidth), s.Y, draw.FontText, tint)
}
