package runtime

import (
	"chat-client/domain/event"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/samber/lo"
)

// EventBus fans out domain events to in-process subscribers.
//
// Handlers run synchronously on the publisher's goroutine, in registration order.
// A handler that panics is logged and skipped; the remaining handlers still run
// and the publisher never sees the failure.
//
// EventBus is safe for concurrent use by multiple goroutines. Publish works on a
// snapshot of the handler list, so handlers may subscribe or unsubscribe while
// an event is being delivered.
type EventBus struct {
	log      *slog.Logger
	mu       sync.RWMutex
	handlers map[event.Type][]event.Handler
}

func NewEventBus(log *slog.Logger) *EventBus {
	return &EventBus{
		log:      log,
		handlers: make(map[event.Type][]event.Handler),
	}
}

// Subscribe registers handler for t. Registering the same handler twice is a no-op.
func (b *EventBus) Subscribe(t event.Type, handler event.Handler) {
	if handler == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if lo.Contains(b.handlers[t], handler) {
		return
	}
	b.handlers[t] = append(b.handlers[t], handler)
}

// Unsubscribe removes handler from t. Unknown types and handlers are ignored.
func (b *EventBus) Unsubscribe(t event.Type, handler event.Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	handlers, ok := b.handlers[t]
	if !ok {
		return
	}
	remaining := lo.Without(handlers, handler)
	if len(remaining) == 0 {
		delete(b.handlers, t)
		return
	}
	b.handlers[t] = remaining
}

func (b *EventBus) Publish(t event.Type, payload any, source, message string) {
	evt := event.New(t, payload, source, message)

	b.mu.RLock()
	snapshot := slices.Clone(b.handlers[t])
	b.mu.RUnlock()

	b.log.Debug("Publishing event", "type", t, "source", source, "subscribers", len(snapshot))
	for _, handler := range snapshot {
		b.deliver(handler, evt)
	}
}

func (b *EventBus) deliver(handler event.Handler, evt event.Event) {
	defer func() {
		if r := recover(); r != nil {
			b.log.Error("Event handler panicked",
				"type", evt.Type,
				"handler", fmt.Sprintf("%T", handler),
				"panic", r,
			)
		}
	}()
	handler.Handle(evt)
}
