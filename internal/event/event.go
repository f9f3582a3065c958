// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — игровое событие. Data обычно содержит сущность-источник.
type Event struct {
	Type EventType
	Data any
}

// Listener получает события, на которые подписан.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher рассылает события синхронно, в потоке обновления.
// Подписки, сделанные во время рассылки, вступают в силу со следующего события.
type Dispatcher struct {
	routes map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{routes: make(map[EventType][]Listener)}
}

func (d *Dispatcher) Subscribe(t EventType, l Listener) {
	d.routes[t] = append(d.routes[t], l)
}

// SubscribeAll подписывает l сразу на несколько типов.
func (d *Dispatcher) SubscribeAll(l Listener, types ...EventType) {
	for _, t := range types {
		d.Subscribe(t, l)
	}
}

// Clear снимает все подписки. Рассылка, которая уже идет, доходит до конца.
func (d *Dispatcher) Clear() {
	clear(d.routes)
}

func (d *Dispatcher) Dispatch(e Event) {
	// range читает срез один раз: новые подписчики и Clear на текущую рассылку не влияют
	for _, l := range d.routes[e.Type] {
		l.OnEvent(e)
	}
}
