// internal/physics/world.go
package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Vec — вектор в метрах
type Vec = cp.Vector

// Category — битовая маска категорий столкновений
type Category uint

const (
	CategoryNone   Category = 0
	CategoryBall   Category = 1 << 0
	CategoryPaddle Category = 1 << 1
	CategoryBlock  Category = 1 << 2
	CategoryAll             = ^Category(0)
)

// BodyType — способ симуляции тела. Кинематическое тело двигается только
// заданной скоростью и не реагирует на удары.
type BodyType int

const (
	Dynamic BodyType = iota
	Kinematic
)

// Один тип столкновений на все фигуры: все контакты приходят в один обработчик
const contactType cp.CollisionType = 1

// Contact — начало касания двух тел, записанное во время Step
type Contact struct {
	A, B *Body
}

// World — обертка над cp.Space: тела с одной фигурой и очередь контактов,
// которую игра разбирает после шага.
type World struct {
	space  *cp.Space
	bodies map[*Body]struct{}
	queue  []Contact
}

// NewWorld — мир с гравитацией в м/с²
func NewWorld(gravity Vec) *World {
	w := &World{
		space:  cp.NewSpace(),
		bodies: make(map[*Body]struct{}),
	}
	w.space.SetGravity(gravity)
	w.space.SetDamping(1)

	handler := w.space.NewCollisionHandler(contactType, contactType)
	handler.BeginFunc = w.onBegin
	return w
}

func (w *World) onBegin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	a, b := arb.Bodies()
	ba, _ := a.UserData.(*Body)
	bb, _ := b.UserData.(*Body)
	if ba != nil && bb != nil {
		w.queue = append(w.queue, Contact{A: ba, B: bb})
	}
	return true
}

// Step продвигает симуляцию на dt и возвращает контакты, начавшиеся за шаг.
// Менять мир можно только после возврата.
func (w *World) Step(dt float64) []Contact {
	w.queue = nil
	if dt > 0 {
		w.space.Step(dt)
	}
	contacts := w.queue
	w.queue = nil
	return contacts
}

func (w *World) BodyCount() int {
	return len(w.bodies)
}

// CreateCircle — круг с центром в начале координат тела
func (w *World) CreateCircle(radius, density float64, typ BodyType, owner any) *Body {
	mass := density * radius * radius * math.Pi
	b := w.newBody(typ, mass, cp.MomentForCircle(mass, 0, radius, Vec{}), owner)
	b.addShape(cp.NewCircle(b.body, radius, Vec{}))
	return b
}

func (w *World) CreateRectangle(width, height, density float64, typ BodyType, owner any) *Body {
	return w.CreateRoundedRectangle(width, height, 0, density, typ, owner)
}

// CreateRoundedRectangle — прямоугольник width×height со скругленными углами
func (w *World) CreateRoundedRectangle(width, height, radius, density float64, typ BodyType, owner any) *Body {
	radius = math.Max(0, math.Min(radius, math.Min(width, height)/2))
	mass := density * width * height
	b := w.newBody(typ, mass, cp.MomentForBox(mass, width, height), owner)
	b.addShape(cp.NewBox(b.body, width-2*radius, height-2*radius, radius))
	return b
}

func (w *World) newBody(typ BodyType, mass, moment float64, owner any) *Body {
	var cb *cp.Body
	switch typ {
	case Kinematic:
		cb = cp.NewKinematicBody()
	default:
		cb = cp.NewBody(mass, moment)
	}

	b := &Body{
		world:      w,
		body:       cb,
		owner:      owner,
		categories: CategoryAll,
		mask:       CategoryAll,
		elasticity: 0,
		friction:   0.7,
	}
	cb.UserData = b
	cb.SetVelocityUpdateFunc(b.updateVelocity)
	w.space.AddBody(cb)
	w.bodies[b] = struct{}{}
	return b
}

// RemoveBody удаляет тело вместе с фигурами. Повторное удаление ничего не делает.
func (w *World) RemoveBody(b *Body) {
	if b == nil || b.world != w {
		return
	}
	for _, s := range b.shapes {
		w.space.RemoveShape(s)
	}
	w.space.RemoveBody(b.body)
	b.body.UserData = nil
	b.shapes = nil
	b.world = nil
	b.owner = nil
	delete(w.bodies, b)
}

func (w *World) Clear() {
	bodies := make([]*Body, 0, len(w.bodies))
	for b := range w.bodies {
		bodies = append(bodies, b)
	}
	for _, b := range bodies {
		w.RemoveBody(b)
	}
	w.queue = nil
}
