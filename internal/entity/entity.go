// internal/entity/entity.go
package entity

import (
	"breakout-party/internal/config"
	"breakout-party/internal/draw"
	"breakout-party/internal/event"
	"breakout-party/internal/input"
	"breakout-party/internal/physics"
	"breakout-party/internal/utils"
)

// Env — сервисы, которые площадка передает своим сущностям.
// Input и Events можно не задавать: без ввода ракетки людей стоят, без
// диспетчера события теряются. RNG нужен всегда; если он пуст,
// NewPlayground подставляет генератор с сидом от часов.
type Env struct {
	RNG    *utils.PRNGService
	Input  *input.Manager
	Events *event.Dispatcher
}

// Entity — игровой объект с одним физическим телом. Набор реализаций
// закрыт: интерфейс удовлетворяют только типы, встраивающие Base.
type Entity interface {
	// Initialize вызывается после того, как площадка записана в сущность;
	// здесь создается физическое тело.
	Initialize()
	Update(dt float64)
	Draw(c draw.Canvas)
	// Destroy удаляет тело из мира. Повторный вызов ничего не делает.
	Destroy()
	Body() *physics.Body
	base() *Base
}

// Collider получает начало контакта после шага физики.
// other равен nil, если вторая сущность уже уничтожена.
type Collider interface {
	OnCollision(other Entity)
}

// Base — общая часть всех сущностей.
type Base struct {
	playground *Playground
	body       *physics.Body
}

func (b *Base) base() *Base { return b }

// Playground возвращает площадку, nil до Add и после Remove.
func (b *Base) Playground() *Playground { return b.playground }

// Body возвращает физическое тело, nil после Destroy.
func (b *Base) Body() *physics.Body { return b.body }

// SetPixelPosition ставит тело в точку экрана.
func (b *Base) SetPixelPosition(x, y float64) {
	b.body.SetPosition(physics.Vec{X: x * config.MeterPerPixel, Y: y * config.MeterPerPixel})
}

// PixelPosition — позиция тела в пикселях.
func (b *Base) PixelPosition() (x, y float64) {
	p := b.body.Position()
	return p.X * config.PixelsPerMeter, p.Y * config.PixelsPerMeter
}

// OutOfBounds сообщает, покинуло ли тело игровое поле.
func (b *Base) OutOfBounds() bool {
	x, y := b.PixelPosition()
	return x < 0 || x > config.ScreenWidth || y < 0 || y > config.ScreenHeight
}

func (b *Base) dispatch(t event.EventType, data any) {
	if b.playground != nil && b.playground.env.Events != nil {
		b.playground.env.Events.Dispatch(event.Event{Type: t, Data: data})
	}
}

// destroyBody отвязывает владельца, удаляет тело и очищает ссылку.
func (b *Base) destroyBody() {
	if b.body == nil {
		return
	}
	b.body.Detach()
	if b.playground != nil {
		b.playground.world.RemoveBody(b.body)
	}
	b.body = nil
}
