// internal/input/actions.go
package input

// Action — логическое действие игрока
type Action int

const (
	Left Action = iota
	Right
	Up
	Down
	Ok
	Abort
	actionCount
)

var actionNames = [actionCount]string{"Left", "Right", "Up", "Down", "Ok", "Abort"}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// Player — индекс игрового слота
type Player int

const (
	PlayerOne Player = iota
	PlayerTwo
	PlayerThree
	PlayerFour
	playerCount
)

// Players перечисляет все слоты по порядку
var Players = [playerCount]Player{PlayerOne, PlayerTwo, PlayerThree, PlayerFour}

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "One"
	case PlayerTwo:
		return "Two"
	case PlayerThree:
		return "Three"
	case PlayerFour:
		return "Four"
	}
	return "Unknown"
}

// Horizontal сообщает, двигается ли ракетка игрока по оси X.
func (p Player) Horizontal() bool {
	return p == PlayerOne || p == PlayerTwo
}
