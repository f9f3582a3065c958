// internal/state/manager.go
package state

import (
	"breakout-party/internal/draw"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Manager — стек состояний. Индекс 0 — активное состояние: только оно
// обновляется, и с него начинается отрисовка.
type Manager struct {
	ctx    Context
	states []Gamestate
	clock  float64
}

func NewManager(ctx Context) *Manager {
	if ctx.Log == nil {
		ctx.Log = log.New(io.Discard)
	}
	if ctx.Now == nil {
		ctx.Now = time.Now
	}
	return &Manager{ctx: ctx}
}

func (m *Manager) Context() *Context { return &m.ctx }

// Add кладет состояние на вершину стека и инициализирует его.
func (m *Manager) Add(s Gamestate) {
	b := s.base()
	b.manager = m
	b.log = m.ctx.Log.With("state", name(s))
	m.states = append([]Gamestate{s}, m.states...)
	b.log.Debug("state added", "depth", len(m.states))
	s.Initialize()
}

// Remove снимает состояние со стека и уничтожает его. Состояния не из
// этого менеджера игнорируются.
func (m *Manager) Remove(s Gamestate) {
	for i, x := range m.states {
		if x != s {
			continue
		}
		m.states = append(m.states[:i:i], m.states[i+1:]...)
		s.base().log.Debug("state removed", "depth", len(m.states))
		s.Destroy()
		return
	}
}

// Update продвигает часы менеджера и обновляет верхнее состояние.
func (m *Manager) Update(dt float64) {
	m.clock += dt
	if len(m.states) > 0 {
		m.states[0].Update(dt)
	}
}

// Draw рисует состояния сверху вниз, пока какое-то не вернет false.
func (m *Manager) Draw(c draw.Canvas) {
	for _, s := range m.states {
		if !s.Draw(c) {
			return
		}
	}
}

func (m *Manager) IsEmpty() bool { return len(m.states) == 0 }

func (m *Manager) Len() int { return len(m.states) }

// Top возвращает активное состояние или nil.
func (m *Manager) Top() Gamestate {
	if len(m.states) == 0 {
		return nil
	}
	return m.states[0]
}

// Time — секунды с момента создания менеджера, для анимаций.
func (m *Manager) Time() float64 { return m.clock }

func name(s Gamestate) string {
	n := fmt.Sprintf("%T", s)
	return n[strings.LastIndex(n, ".")+1:]
}
