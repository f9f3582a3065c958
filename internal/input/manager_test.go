package input

import "testing"

func TestPressedVersusActive(t *testing.T) {
	src := &Scripted{}
	m := NewManager(src)

	src.Hold(PlayerOne, Ok)
	m.Update()
	if !m.IsActionPressed(PlayerOne, Ok) || !m.IsActionActive(PlayerOne, Ok) {
		t.Fatal("first frame should be pressed and active")
	}

	m.Update()
	if m.IsActionPressed(PlayerOne, Ok) {
		t.Error("held action reported as pressed twice")
	}
	if !m.IsActionActive(PlayerOne, Ok) {
		t.Error("held action should stay active")
	}

	src.Release(PlayerOne, Ok)
	m.Update()
	if m.IsActionActive(PlayerOne, Ok) || m.IsActionPressed(PlayerOne, Ok) {
		t.Error("released action still reported")
	}
}

func TestPlayersAreIndependent(t *testing.T) {
	src := &Scripted{}
	m := NewManager(src)
	src.Hold(PlayerTwo, Left)
	m.Update()

	if m.IsActionActive(PlayerOne, Left) {
		t.Error("player one should not see player two input")
	}
	if !m.IsActionActive(PlayerTwo, Left) {
		t.Error("player two input lost")
	}
}

func TestOutOfRangeIsIgnored(t *testing.T) {
	m := NewManager(nil)
	m.Update()
	if m.IsActionActive(Player(9), Ok) || m.IsActionPressed(PlayerOne, Action(42)) {
		t.Error("out of range lookup returned true")
	}
	var s Snapshot
	s.Set(Player(-1), Ok, true)
	if s != (Snapshot{}) {
		t.Error("out of range Set mutated snapshot")
	}
}

func TestHorizontal(t *testing.T) {
	tests := map[Player]bool{PlayerOne: true, PlayerTwo: true, PlayerThree: false, PlayerFour: false}
	for p, want := range tests {
		if got := p.Horizontal(); got != want {
			t.Errorf("%v.Horizontal() = %v, want %v", p, got, want)
		}
	}
}
