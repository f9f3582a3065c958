// internal/app/source.go
package app

import (
	"breakout-party/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
)

// stickThreshold — отклонение стика, с которого он считается нажатым.
const stickThreshold = 0.5

var keyboard = map[input.Player]map[input.Action][]ebiten.Key{
	input.PlayerOne: {
		input.Left:  {ebiten.KeyArrowLeft},
		input.Right: {ebiten.KeyArrowRight},
		input.Up:    {ebiten.KeyArrowUp},
		input.Down:  {ebiten.KeyArrowDown},
		input.Ok:    {ebiten.KeyEnter},
		input.Abort: {ebiten.KeyEscape},
	},
	input.PlayerTwo: {
		input.Left:  {ebiten.KeyA},
		input.Right: {ebiten.KeyD},
		input.Up:    {ebiten.KeyW},
		input.Down:  {ebiten.KeyS},
		input.Ok:    {ebiten.KeyShiftLeft},
		input.Abort: {ebiten.KeyTab},
	},
}

var padButtons = map[input.Action]ebiten.StandardGamepadButton{
	input.Left:  ebiten.StandardGamepadButtonLeftLeft,
	input.Right: ebiten.StandardGamepadButtonLeftRight,
	input.Up:    ebiten.StandardGamepadButtonLeftTop,
	input.Down:  ebiten.StandardGamepadButtonLeftBottom,
	input.Ok:    ebiten.StandardGamepadButtonRightBottom,
	input.Abort: ebiten.StandardGamepadButtonRightRight,
}

// Source опрашивает клавиатуру и геймпады через ebiten. N-й
// подключенный геймпад управляет N-м игроком.
type Source struct {
	pads []ebiten.GamepadID
}

func NewSource() *Source { return &Source{} }

func (s *Source) Poll(snap *input.Snapshot) {
	for player, actions := range keyboard {
		for action, keys := range actions {
			for _, k := range keys {
				if ebiten.IsKeyPressed(k) {
					snap.Set(player, action, true)
				}
			}
		}
	}

	s.pads = ebiten.AppendGamepadIDs(s.pads[:0])
	for i, id := range s.pads {
		if i >= len(input.Players) {
			break
		}
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		pollPad(snap, input.Players[i], id)
	}
}

func pollPad(snap *input.Snapshot, player input.Player, id ebiten.GamepadID) {
	for action, b := range padButtons {
		if ebiten.IsStandardGamepadButtonPressed(id, b) {
			snap.Set(player, action, true)
		}
	}
	sticks := [][2]ebiten.StandardGamepadAxis{
		{ebiten.StandardGamepadAxisLeftStickHorizontal, ebiten.StandardGamepadAxisLeftStickVertical},
		{ebiten.StandardGamepadAxisRightStickHorizontal, ebiten.StandardGamepadAxisRightStickVertical},
	}
	for _, axes := range sticks {
		x := ebiten.StandardGamepadAxisValue(id, axes[0])
		y := ebiten.StandardGamepadAxisValue(id, axes[1])
		snap.Set(player, input.Left, x < -stickThreshold)
		snap.Set(player, input.Right, x > stickThreshold)
		snap.Set(player, input.Up, y < -stickThreshold)
		snap.Set(player, input.Down, y > stickThreshold)
	}
}
