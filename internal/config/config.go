// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 320 // Логическое разрешение игрового поля
	ScreenHeight = 240
	WindowScale  = 3

	PixelsPerMeter = 32.0
	MeterPerPixel  = 1.0 / PixelsPerMeter

	MaxDeltaTime   = 0.1        // Ограничение кадра для главного цикла
	MaxPhysicsStep = 1.0 / 30.0 // Не меньше 30 шагов физики в секунду

	Gravity = 0.9 // м/с², тянет разбитые блоки вниз

	BallSpeed        = 3.0  // м/с
	BallRestSpeedSq  = 0.01 // Ниже этого мяч считается остановившимся
	BallJitter       = 0.08
	BallSpawnY       = 210.0
	PaddleSpeed      = 3.0 // м/с
	PaddleDeadband   = 8.0 // px, зона нечувствительности ИИ
	PaddleCornerR    = 3.0 // px
	PaddleEdgeMinX   = 16.0
	PaddleEdgeMaxX   = ScreenWidth - 16.0
	PaddleEdgeMinY   = 32.0
	PaddleEdgeMaxY   = ScreenHeight - 16.0
	BlockFadeFactor  = 0.1
	BlockFrames      = 4
	ExtraBallChance  = 0.1
	BlockSkipChance  = 0.1
	BlockHealthScale = 0.75

	BlockColumns = 6
	BlockRows    = 5
	BlockOriginX = 80.0
	BlockOriginY = 87.0

	StartLives = 4
	StartLevel = 0

	MaxPlayers = 4

	VolumeStep         = 0.05
	CreditsLineHeight  = 24.0
	CreditsScrollSpeed = 1.0 // строк в секунду

	CompanyName = "Pixelgamix"
	GameName    = "BreakoutParty"
	SaveFile    = "Gamedata.toml"
	Version     = "V1.2"
)

var (
	BackgroundColor = color.RGBA{24, 20, 37, 255}
	GridColor       = color.RGBA{38, 43, 68, 255}
	TextColor       = color.RGBA{255, 255, 255, 255}
	DimTextColor    = color.RGBA{128, 128, 128, 255}
	HighlightColor  = color.RGBA{255, 228, 120, 255}
	BallColor       = color.RGBA{255, 255, 255, 255}
	PaddleColor     = color.RGBA{192, 203, 220, 255}
	TitleColor      = color.RGBA{254, 174, 52, 255}
)
