package entity

import (
	"breakout-party/internal/event"
	"breakout-party/internal/physics"
	"testing"
)

func TestBlockHealthAndEvents(t *testing.T) {
	f := newFixture(t)
	block := NewBlock(3)
	ball := NewBall()
	f.playground.Add(block)
	f.playground.Add(ball)
	block.SetPixelPosition(100, 100)

	prev := block.Health
	for i := 0; i < 6; i++ {
		block.OnCollision(ball)
		if block.Health > prev {
			t.Fatalf("health grew from %d to %d", prev, block.Health)
		}
		if block.Health < 0 {
			t.Fatalf("health went negative: %d", block.Health)
		}
		prev = block.Health
	}

	if got := f.log.count(event.BlockHit); got != 2 {
		t.Errorf("BlockHit = %d, want 2", got)
	}
	if got := f.log.count(event.BlockDestroyed); got != 1 {
		t.Errorf("BlockDestroyed = %d, want 1", got)
	}
	if block.Body().Categories() != physics.CategoryNone {
		t.Error("destroyed block still collides")
	}
	if block.Body().IgnoreGravity() {
		t.Error("destroyed block should fall")
	}
}

func TestBlockStaysHomeWhileAlive(t *testing.T) {
	f := newFixture(t)
	block := NewBlock(2)
	f.playground.Add(block)
	block.SetPixelPosition(120, 90)
	block.Body().SetLinearVelocity(physics.Vec{X: 2, Y: 1})
	block.Body().SetAngularVelocity(3)

	for i := 0; i < 10; i++ {
		f.playground.Update(1.0 / 60)
	}
	x, y := block.PixelPosition()
	if x < 119.999 || x > 120.001 || y < 89.999 || y > 90.001 {
		t.Errorf("block drifted to (%v, %v)", x, y)
	}
	if block.Body().AngularVelocity() != 0 {
		t.Error("block still spinning")
	}
}

func TestBrokenBlockFallsOffField(t *testing.T) {
	f := newFixture(t)
	block := NewBlock(1)
	f.playground.Add(block)
	block.SetPixelPosition(100, 230)
	block.OnCollision(nil)

	for i := 0; i < 600 && f.playground.Contains(block); i++ {
		f.playground.Update(1.0 / 30)
	}
	if f.playground.Contains(block) {
		t.Fatal("broken block never left the playground")
	}
}

func TestBlockFrame(t *testing.T) {
	tests := []struct {
		health, max, want int
	}{
		{3, 3, 0},
		{2, 3, 1},
		{1, 3, 2},
		{0, 3, 3},
		{1, 1, 0},
		{5, 10, 1},
		{1, 10, 2},
	}
	for _, tt := range tests {
		b := &Block{Health: tt.health, MaxHealth: tt.max}
		if got := b.Frame(); got != tt.want {
			t.Errorf("Frame(%d/%d) = %d, want %d", tt.health, tt.max, got, tt.want)
		}
	}
}

func TestNewBlockClampsHealth(t *testing.T) {
	b := NewBlock(0)
	if b.Health != 1 || b.MaxHealth != 1 {
		t.Errorf("NewBlock(0) health = %d/%d", b.Health, b.MaxHealth)
	}
}
