// internal/input/scripted.go
package input

// Scripted — источник ввода, которым управляет вызывающий: Poll копирует Next.
// Используется в тестах.
type Scripted struct {
	Next Snapshot
}

// Hold держит действие нажатым до Release
func (s *Scripted) Hold(p Player, a Action) { s.Next.Set(p, a, true) }

// Release отпускает действие
func (s *Scripted) Release(p Player, a Action) {
	if p < 0 || p >= playerCount || a < 0 || a >= actionCount {
		return
	}
	s.Next[p][a] = false
}

// ReleaseAll отпускает все
func (s *Scripted) ReleaseAll() { s.Next = Snapshot{} }

func (s *Scripted) Poll(snap *Snapshot) { *snap = s.Next }
