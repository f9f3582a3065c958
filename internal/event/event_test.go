package event

import "testing"

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchRoutesByType(t *testing.T) {
	d := NewDispatcher()
	hits, all := &recorder{}, &recorder{}
	d.Subscribe(BlockHit, hits)
	d.SubscribeAll(all, BlockHit, BallLost)

	d.Dispatch(Event{Type: BlockHit, Data: 1})
	d.Dispatch(Event{Type: BallLost})
	d.Dispatch(Event{Type: LevelUp})

	if len(hits.got) != 1 || hits.got[0].Data != 1 {
		t.Errorf("hits = %+v", hits.got)
	}
	if len(all.got) != 2 {
		t.Errorf("all = %+v", all.got)
	}
}

func TestClear(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r, PaddleHit, GameOver)
	d.Dispatch(Event{Type: PaddleHit})
	d.Clear()
	d.Dispatch(Event{Type: PaddleHit})
	d.Dispatch(Event{Type: GameOver})

	if len(r.got) != 1 {
		t.Errorf("got %d events, want 1", len(r.got))
	}
}

// subscriber подписывает late во время рассылки, а clearer снимает все подписки.
type subscriber struct {
	d     *Dispatcher
	late  Listener
	clear bool
}

func (s *subscriber) OnEvent(e Event) {
	if s.clear {
		s.d.Clear()
		return
	}
	s.d.Subscribe(e.Type, s.late)
}

func TestChangesDuringDispatch(t *testing.T) {
	tests := []struct {
		name     string
		clear    bool
		wantNext int // событий у второго подписчика после второй рассылки
	}{
		{"subscribe", false, 1},
		{"clear", true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDispatcher()
			late := &recorder{}
			next := &recorder{}
			d.Subscribe(BlockDestroyed, &subscriber{d: d, late: late, clear: tt.clear})
			d.Subscribe(BlockDestroyed, next)

			d.Dispatch(Event{Type: BlockDestroyed})
			if len(late.got) != 0 {
				t.Errorf("listener added during dispatch got the current event")
			}
			if len(next.got) != tt.wantNext {
				t.Errorf("next got %d events, want %d", len(next.got), tt.wantNext)
			}
		})
	}
}
