// internal/input/manager.go
package input

// Snapshot — состояние всех действий всех игроков за один кадр
type Snapshot [playerCount][actionCount]bool

// Set отмечает действие активным. Индексы вне диапазона игнорируются.
func (s *Snapshot) Set(p Player, a Action, active bool) {
	if p < 0 || p >= playerCount || a < 0 || a >= actionCount {
		return
	}
	s[p][a] = s[p][a] || active
}

// Source опрашивает устройства и заполняет пустой снимок.
type Source interface {
	Poll(s *Snapshot)
}

// Manager хранит текущий и предыдущий снимки, чтобы отличать
// нажатие (фронт) от удержания (уровень).
type Manager struct {
	source   Source
	previous Snapshot
	current  Snapshot
}

func NewManager(source Source) *Manager {
	return &Manager{source: source}
}

// Update опрашивает источник один раз за кадр.
func (m *Manager) Update() {
	m.previous = m.current
	m.current = Snapshot{}
	if m.source != nil {
		m.source.Poll(&m.current)
	}
}

// IsActionActive — действие удерживается в текущем кадре.
func (m *Manager) IsActionActive(p Player, a Action) bool {
	if p < 0 || p >= playerCount || a < 0 || a >= actionCount {
		return false
	}
	return m.current[p][a]
}

// IsActionPressed — действие стало активным именно в этом кадре.
func (m *Manager) IsActionPressed(p Player, a Action) bool {
	if p < 0 || p >= playerCount || a < 0 || a >= actionCount {
		return false
	}
	return m.current[p][a] && !m.previous[p][a]
}
