package entity

import (
	"breakout-party/internal/event"
	"breakout-party/internal/input"
	"breakout-party/internal/utils"
	"testing"
)

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) { l.events = append(l.events, e) }

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type fixture struct {
	playground *Playground
	input      *input.Scripted
	manager    *input.Manager
	log        *eventLog
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	src := &input.Scripted{}
	manager := input.NewManager(src)
	events := event.NewDispatcher()
	log := &eventLog{}
	events.SubscribeAll(log,
		event.BallLost, event.BlockHit, event.BlockDestroyed, event.PaddleHit)

	p := NewPlayground(Env{
		RNG:    utils.NewPRNGService(1234),
		Input:  manager,
		Events: events,
	})
	t.Cleanup(p.Destroy)
	return &fixture{playground: p, input: src, manager: manager, log: log}
}
