// internal/assets/sprites.go
// Пакет assets описывает спрайты игры и встраивает тексты. Сами картинки
// рисует pkg/render.
package assets

import (
	_ "embed"
	"strings"
)

// Имена спрайтов
const (
	Background = "Background"
	Title      = "Title"
	HowToPlay  = "HowToPlay"
	Ball       = "Ball"
	Paddle     = "Paddle"
	Block      = "Block"
)

// Sprite — размер одного кадра; кадры листа идут слева направо
type Sprite struct {
	Name          string
	Width, Height int
	Frames        int
}

var sprites = map[string]Sprite{
	Background: {Name: Background, Width: 320, Height: 240, Frames: 1},
	Title:      {Name: Title, Width: 160, Height: 120, Frames: 1},
	HowToPlay:  {Name: HowToPlay, Width: 320, Height: 240, Frames: 1},
	Ball:       {Name: Ball, Width: 8, Height: 8, Frames: 1},
	Paddle:     {Name: Paddle, Width: 48, Height: 8, Frames: 1},
	Block:      {Name: Block, Width: 32, Height: 16, Frames: 4},
}

// Lookup — описание спрайта по имени
func Lookup(name string) (Sprite, bool) {
	s, ok := sprites[name]
	return s, ok
}

// MustLookup — для имен, известных при компиляции; паникует на неизвестном
func MustLookup(name string) Sprite {
	s, ok := sprites[name]
	if !ok {
		panic("assets: unknown sprite " + name)
	}
	return s
}

// All — все спрайты
func All() []Sprite {
	out := make([]Sprite, 0, len(sprites))
	for _, s := range sprites {
		out = append(out, s)
	}
	return out
}

//go:embed credits.txt
var credits string

// Credits — строки титров. Строки, начинающиеся с '[', — заголовки.
func Credits() []string {
	return strings.Split(strings.TrimRight(credits, "\n"), "\n")
}
