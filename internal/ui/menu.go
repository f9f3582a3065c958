// internal/ui/menu.go
package ui

import (
	"breakout-party/internal/config"
	"breakout-party/internal/draw"
	"image/color"
)

// Menu — вертикальный список пунктов с выделенным текущим.
type Menu struct {
	Items    []string
	Selected int
	Y        float64 // верхний край первого пункта
	Spacing  float64
	Wrap     bool // переход с последнего пункта на первый и обратно
}

// NewMenu создает меню, центрированное по горизонтали.
func NewMenu(y, spacing float64, items ...string) *Menu {
	return &Menu{Items: items, Y: y, Spacing: spacing}
}

// Next выделяет следующий пункт. Возвращает false, если выделение
// осталось на месте.
func (m *Menu) Next() bool {
	switch {
	case len(m.Items) == 0:
		return false
	case m.Selected < len(m.Items)-1:
		m.Selected++
	case m.Wrap:
		m.Selected = 0
	default:
		return false
	}
	return true
}

// Prev выделяет предыдущий пункт.
func (m *Menu) Prev() bool {
	switch {
	case len(m.Items) == 0:
		return false
	case m.Selected > 0:
		m.Selected--
	case m.Wrap:
		m.Selected = len(m.Items) - 1
	default:
		return false
	}
	return true
}

// Current возвращает выделенный пункт или "" для пустого меню.
func (m *Menu) Current() string {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return ""
	}
	return m.Items[m.Selected]
}

// Draw рисует пункты; выделенный мигает.
func (m *Menu) Draw(c draw.Canvas, t float64) {
	for i, item := range m.Items {
		var tint color.Color = config.DimTextColor
		if i == m.Selected {
			tint = draw.Pulse(t)
		}
		x := draw.CenterX(c, item, draw.FontText, config.ScreenWidth)
		c.DrawText(item, x, m.Y+float64(i)*m.Spacing, draw.FontText, tint)
	}
}
