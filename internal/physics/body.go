// internal/physics/body.go
package physics

import "github.com/jakecoffman/cp"

// Body — твердое тело ровно с одной фигурой
type Body struct {
	world  *World
	body   *cp.Body
	shapes []*cp.Shape
	owner  any

	ignoreGravity bool
	categories    Category
	mask          Category
	friction      float64
	elasticity    float64
}

func (b *Body) addShape(s *cp.Shape) {
	s.SetCollisionType(contactType)
	s.SetFriction(b.friction)
	s.SetElasticity(b.elasticity)
	b.shapes = append(b.shapes, s)
	b.world.space.AddShape(s)
	b.applyFilter()
}

func (b *Body) updateVelocity(body *cp.Body, gravity cp.Vector, damping, dt float64) {
	if b.ignoreGravity {
		gravity = cp.Vector{}
	}
	cp.BodyUpdateVelocity(body, gravity, damping, dt)
}

func (b *Body) applyFilter() {
	filter := cp.NewShapeFilter(0, uint(b.categories), uint(b.mask))
	for _, s := range b.shapes {
		s.SetFilter(filter)
	}
}

// Alive — тело еще в мире
func (b *Body) Alive() bool { return b.world != nil }

// Owner — владелец, переданный при создании; nil после удаления или Detach
func (b *Body) Owner() any { return b.owner }

// Detach отвязывает владельца, чтобы контакты из очереди до него не дошли
func (b *Body) Detach() { b.owner = nil }

func (b *Body) Position() Vec { return b.body.Position() }

func (b *Body) SetPosition(p Vec) { b.body.SetPosition(p) }

func (b *Body) LinearVelocity() Vec { return b.body.Velocity() }

func (b *Body) SetLinearVelocity(v Vec) { b.body.SetVelocity(v.X, v.Y) }

func (b *Body) Angle() float64 { return b.body.Angle() }

func (b *Body) SetAngle(a float64) { b.body.SetAngle(a) }

func (b *Body) AngularVelocity() float64 { return b.body.AngularVelocity() }

func (b *Body) SetAngularVelocity(w float64) { b.body.SetAngularVelocity(w) }

func (b *Body) IgnoreGravity() bool { return b.ignoreGravity }

func (b *Body) SetIgnoreGravity(ignore bool) {
	b.ignoreGravity = ignore
	b.body.Activate()
}

func (b *Body) Categories() Category { return b.categories }

// SetCategories — CategoryNone выключает столкновения тела
func (b *Body) SetCategories(c Category) {
	b.categories = c
	b.applyFilter()
}

// CollidesWith — маска категорий, с которыми тело сталкивается
func (b *Body) CollidesWith() Category { return b.mask }

func (b *Body) SetCollidesWith(mask Category) {
	b.mask = mask
	b.applyFilter()
}

func (b *Body) Friction() float64 { return b.friction }

func (b *Body) Elasticity() float64 { return b.elasticity }

// MakeBouncy — без трения и с абсолютно упругими ударами
func (b *Body) MakeBouncy() {
	b.friction = 0
	b.elasticity = 1
	for _, s := range b.shapes {
		s.SetFriction(0)
		s.SetElasticity(1)
	}
}
