// internal/audio/types.go
package audio

// SoundEffect — короткий звук игрового события
type SoundEffect int

const (
	BallLost SoundEffect = iota
	BlockDestroy
	BlockHit
	GameOver
	LevelUp
	MenuBack
	MenuSelect
	MenuValidate
	PaddleHit

	soundCount
)

var soundNames = [soundCount]string{
	"BallLost", "BlockDestroy", "BlockHit", "GameOver", "LevelUp",
	"MenuBack", "MenuSelect", "MenuValidate", "PaddleHit",
}

func (s SoundEffect) String() string {
	if s < 0 || s >= soundCount {
		return "Unknown"
	}
	return soundNames[s]
}

// MusicTrack — фоновая музыка, играет по кругу
type MusicTrack int

const (
	MusicNone MusicTrack = iota
	TitleMusic
	GameMusic
)

func (m MusicTrack) String() string {
	switch m {
	case MusicNone:
		return "None"
	case TitleMusic:
		return "Title"
	case GameMusic:
		return "Game"
	}
	return "Unknown"
}
