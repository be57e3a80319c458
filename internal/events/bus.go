package events

import (
	"log/slog"
	"sync"
	"time"
)

// Handler is called with every event it subscribed to.
type Handler func(Event)

type subscription struct {
	id      uint64
	types   map[EventType]struct{} // nil receives every event
	handler Handler
}

// Bus is an in-process publish/subscribe bus for prediction run events.
// It is safe for concurrent use.
type Bus struct {
	mu          sync.RWMutex
	nextID      uint64
	subscribers []subscription
	logger      *slog.Logger
}

// NewBus returns an empty bus. A nil logger uses slog.Default.
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{logger: logger.With("component", "events")}
}

// Subscribe registers handler for the given types, or for every event when
// no type is given. The returned function removes the subscription.
func (b *Bus) Subscribe(handler Handler, types ...EventType) (unsubscribe func()) {
	sub := subscription{handler: handler}
	if len(types) > 0 {
		sub.types = make(map[EventType]struct{}, len(types))
		for _, t := range types {
			sub.types[t] = struct{}{}
		}
	}

	b.mu.Lock()
	b.nextID++
	sub.id = b.nextID
	b.subscribers = append(b.subscribers, sub)
	b.mu.Unlock()

	return func() { b.remove(sub.id) }
}

func (b *Bus) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subscribers {
		if s.id == id {
			b.subscribers = append(b.subscribers[:i:i], b.subscribers[i+1:]...)
			return
		}
	}
}

// Publish delivers e to every matching subscriber in the caller's goroutine.
// A zero timestamp is set to the current time. A panicking handler is
// logged and does not stop delivery to the others.
func (b *Bus) Publish(e Event) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}

	b.mu.RLock()
	subs := make([]subscription, len(b.subscribers))
	copy(subs, b.subscribers)
	b.mu.RUnlock()

	for _, sub := range subs {
		if sub.types != nil {
			if _, ok := sub.types[e.Type]; !ok {
				continue
			}
		}
		b.deliver(sub.handler, e)
	}
}

func (b *Bus) deliver(h Handler, e Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("subscriber panic", "type", e.Type, "panic", r)
		}
	}()
	h(e)
}
