package physics

import (
	"math"
	"testing"
)

type tag string

func newTestWorld() *World {
	return NewWorld(Vec{X: 0, Y: 0.9})
}

func stepFor(w *World, seconds float64) []Contact {
	var all []Contact
	const dt = 1.0 / 60.0
	for t := 0.0; t < seconds; t += dt {
		all = append(all, w.Step(dt)...)
	}
	return all
}

func TestGravityIsPerBody(t *testing.T) {
	w := newTestWorld()
	floating := w.CreateCircle(0.1, 1, Dynamic, tag("floating"))
	floating.SetIgnoreGravity(true)
	falling := w.CreateCircle(0.1, 1, Dynamic, tag("falling"))
	falling.SetPosition(Vec{X: 5, Y: 0})

	stepFor(w, 1)

	if y := floating.Position().Y; y != 0 {
		t.Errorf("floating body moved to y=%v", y)
	}
	if y := falling.Position().Y; y <= 0.3 {
		t.Errorf("falling body only reached y=%v", y)
	}
}

func TestContactsAreQueued(t *testing.T) {
	w := NewWorld(Vec{})
	a := w.CreateCircle(0.1, 1, Dynamic, tag("a"))
	b := w.CreateCircle(0.1, 1, Dynamic, tag("b"))
	a.SetPosition(Vec{X: 0, Y: 0})
	b.SetPosition(Vec{X: 1, Y: 0})
	a.SetLinearVelocity(Vec{X: 2, Y: 0})
	b.SetLinearVelocity(Vec{X: -2, Y: 0})

	contacts := stepFor(w, 1)
	if len(contacts) == 0 {
		t.Fatal("expected a contact")
	}
	c := contacts[0]
	owners := map[any]bool{c.A.Owner(): true, c.B.Owner(): true}
	if !owners[tag("a")] || !owners[tag("b")] {
		t.Errorf("unexpected owners %v, %v", c.A.Owner(), c.B.Owner())
	}
}

func TestCategoryNoneDisablesCollisions(t *testing.T) {
	w := NewWorld(Vec{})
	a := w.CreateCircle(0.1, 1, Dynamic, tag("a"))
	b := w.CreateRectangle(0.5, 0.5, 1, Dynamic, tag("b"))
	a.SetCategories(CategoryBall)
	a.SetCollidesWith(CategoryBlock)
	b.SetCategories(CategoryNone)
	b.SetCollidesWith(CategoryBall)
	b.SetPosition(Vec{X: 1, Y: 0})
	a.SetLinearVelocity(Vec{X: 2, Y: 0})

	if contacts := stepFor(w, 1); len(contacts) != 0 {
		t.Fatalf("expected no contacts, got %d", len(contacts))
	}
}

func TestBouncyCollisionKeepsSpeed(t *testing.T) {
	w := NewWorld(Vec{})
	ball := w.CreateCircle(0.125, 1, Dynamic, tag("ball"))
	ball.MakeBouncy()
	wall := w.CreateRectangle(0.2, 4, 1, Kinematic, tag("wall"))
	wall.MakeBouncy()
	wall.SetPosition(Vec{X: 1, Y: 0})
	ball.SetLinearVelocity(Vec{X: 2, Y: 0})

	stepFor(w, 1.5)

	v := ball.LinearVelocity()
	if v.X >= 0 {
		t.Fatalf("ball did not bounce back, v=%v", v)
	}
	if speed := math.Hypot(v.X, v.Y); math.Abs(speed-2) > 0.05 {
		t.Errorf("speed after elastic bounce = %v, want ~2", speed)
	}
	if ball.Friction() != 0 || ball.Elasticity() != 1 {
		t.Errorf("friction=%v elasticity=%v", ball.Friction(), ball.Elasticity())
	}
}

func TestRemoveBodyAndClear(t *testing.T) {
	w := newTestWorld()
	a := w.CreateCircle(0.1, 1, Dynamic, tag("a"))
	w.CreateRoundedRectangle(1.5, 0.25, 0.1, 1, Kinematic, tag("b"))
	w.CreateRectangle(1, 0.5, 1, Dynamic, tag("c"))

	w.RemoveBody(a)
	w.RemoveBody(a)
	if a.Alive() || a.Owner() != nil {
		t.Error("removed body still alive")
	}
	if got := w.BodyCount(); got != 2 {
		t.Fatalf("BodyCount = %d, want 2", got)
	}

	w.Clear()
	if got := w.BodyCount(); got != 0 {
		t.Fatalf("BodyCount after Clear = %d", got)
	}
	w.Step(1.0 / 60)
}
