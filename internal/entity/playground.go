// internal/entity/playground.go
package entity

import (
	"breakout-party/internal/config"
	"breakout-party/internal/draw"
	"breakout-party/internal/physics"
	"breakout-party/internal/utils"
	"iter"
	"math"
)

// Playground владеет физическим миром и упорядоченным списком сущностей.
// Порядок вставки — порядок обновления и отрисовки (с конца).
type Playground struct {
	env      Env
	world    *physics.World
	entities []Entity
}

func NewPlayground(env Env) *Playground {
	if env.RNG == nil {
		env.RNG = utils.NewPRNGService(0)
	}
	return &Playground{
		env:   env,
		world: physics.NewWorld(physics.Vec{X: 0, Y: config.Gravity}),
	}
}

func (p *Playground) Env() Env { return p.env }

func (p *Playground) World() *physics.World { return p.world }

// Len — количество живых сущностей.
func (p *Playground) Len() int { return len(p.entities) }

// Add записывает площадку в сущность, инициализирует ее и добавляет в конец.
func (p *Playground) Add(e Entity) {
	b := e.base()
	if b.playground != nil {
		return
	}
	b.playground = p
	e.Initialize()
	p.entities = append(p.entities, e)
}

// Remove убирает сущность из списка, затем вызывает Destroy.
func (p *Playground) Remove(e Entity) {
	i := p.indexOf(e)
	if i < 0 {
		return
	}
	p.entities = append(p.entities[:i], p.entities[i+1:]...)
	e.Destroy()
	e.base().playground = nil
}

// Contains сообщает, живет ли сущность на площадке.
func (p *Playground) Contains(e Entity) bool {
	return p.indexOf(e) >= 0
}

func (p *Playground) indexOf(e Entity) int {
	for i, x := range p.entities {
		if x == e {
			return i
		}
	}
	return -1
}

// Update делает один шаг физики (не длиннее MaxPhysicsStep), раздает
// накопленные контакты и обновляет сущности с конца списка, чтобы
// удаление себя или появление новых сущностей не ломало обход.
func (p *Playground) Update(dt float64) {
	for _, c := range p.world.Step(math.Min(dt, config.MaxPhysicsStep)) {
		deliver(c.A, c.B)
		deliver(c.B, c.A)
	}

	for i := len(p.entities) - 1; i >= 0; i-- {
		if i >= len(p.entities) {
			continue
		}
		p.entities[i].Update(dt)
	}
}

func deliver(self, other *physics.Body) {
	e, ok := self.Owner().(Entity)
	if !ok {
		return
	}
	c, ok := e.(Collider)
	if !ok {
		return
	}
	o, _ := other.Owner().(Entity)
	c.OnCollision(o)
}

// Draw рисует сущности в том же порядке, в котором они обновляются.
func (p *Playground) Draw(c draw.Canvas) {
	for i := len(p.entities) - 1; i >= 0; i-- {
		p.entities[i].Draw(c)
	}
}

// Destroy удаляет сущности, пока они не закончатся: уничтожение может
// порождать новые сущности. Затем мир очищается.
func (p *Playground) Destroy() {
	for len(p.entities) > 0 {
		p.Remove(p.entities[0])
	}
	p.world.Clear()
}

// Entities лениво перечисляет сущности типа T с конца списка. Список
// перечитывается на каждом шаге, так что удаление во время обхода безопасно.
func Entities[T Entity](p *Playground) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(p.entities) - 1; i >= 0; i-- {
			if i >= len(p.entities) {
				continue
			}
			if e, ok := p.entities[i].(T); ok {
				if !yield(e) {
					return
				}
			}
		}
	}
}

// Count считает сущности типа T, для которых keep возвращает true.
// keep == nil считает все.
func Count[T Entity](p *Playground, keep func(T) bool) int {
	n := 0
	for e := range Entities[T](p) {
		if keep == nil || keep(e) {
			n++
		}
	}
	return n
}
