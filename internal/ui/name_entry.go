// internal/ui/name_entry.go
package ui

import (
	"breakout-party/internal/config"
	"breakout-party/internal/draw"
	"image/color"
)

// NameEntry — ввод имени из букв A–Z по одной, как на игровых автоматах.
type NameEntry struct {
	letters []byte
	Cursor  int
}

// NewNameEntry начинает редактирование с name. Пустое имя дает одну "A".
func NewNameEntry(name string) *NameEntry {
	if name == "" {
		name = "A"
	}
	return &NameEntry{letters: []byte(name)}
}

func (n *NameEntry) String() string { return string(n.letters) }

// Up и Down листают букву под курсором по кругу.
func (n *NameEntry) Up()   { n.shift(1) }
func (n *NameEntry) Down() { n.shift(-1) }

func (n *NameEntry) shift(d int) {
	c := int(n.letters[n.Cursor]-'A') + d
	c = (c%26 + 26) % 26
	n.letters[n.Cursor] = byte('A' + c)
}

// Left и Right двигают курсор, не выходя за имя. false — курсор уже у края.
func (n *NameEntry) Left() bool {
	if n.Cursor == 0 {
		return false
	}
	n.Cursor--
	return true
}

func (n *NameEntry) Right() bool {
	if n.Cursor >= len(n.letters)-1 {
		return false
	}
	n.Cursor++
	return true
}

// Draw рисует имя с мигающей буквой под курсором.
func (n *NameEntry) Draw(c draw.Canvas, x, y, t float64) {
	for i, l := range n.letters {
		var tint color.Color = config.HighlightColor
		if i == n.Cursor {
			tint = draw.Pulse(t)
		}
		c.DrawText(string(l), x, y, draw.FontText, tint)
		x += c.MeasureText(string(l), draw.FontText)
	}
}
