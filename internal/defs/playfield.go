// internal/defs/playfield.go
package defs

import (
	"breakout-party/internal/input"
	"image/color"
)

// PaddleSlot — стартовое место ракетки игрока на краю поля.
type PaddleSlot struct {
	Player   input.Player
	X, Y     float64 // px
	Rotation float64 // градусы
	Computer bool
}

// PaddleSlots: первый игрок снизу, второй сверху, третий слева, четвертый справа.
var PaddleSlots = []PaddleSlot{
	{Player: input.PlayerOne, X: 160, Y: 230, Rotation: 0},
	{Player: input.PlayerTwo, X: 160, Y: 15, Rotation: 180, Computer: true},
	{Player: input.PlayerThree, X: 10, Y: 120, Rotation: 90, Computer: true},
	{Player: input.PlayerFour, X: 310, Y: 120, Rotation: 270, Computer: true},
}

// BlockPalette — оттенки, из которых блок выбирает цвет при создании.
var BlockPalette = []color.RGBA{
	{228, 59, 68, 255},
	{247, 118, 34, 255},
	{254, 231, 97, 255},
	{99, 199, 77, 255},
	{44, 232, 245, 255},
	{0, 153, 219, 255},
	{181, 80, 136, 255},
}
