// internal/event/types.go
package event

const (
	BallLost       EventType = "BallLost"       // Мяч покинул поле
	BlockHit       EventType = "BlockHit"       // Блок получил удар, но жив
	BlockDestroyed EventType = "BlockDestroyed" // Здоровье блока дошло до нуля
	PaddleHit      EventType = "PaddleHit"      // Мяч отскочил от ракетки
	LevelUp        EventType = "LevelUp"        // Начался следующий уровень
	GameOver       EventType = "GameOver"       // Жизни закончились
)
