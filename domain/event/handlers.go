package event

// Handler Each kind of event has his own handler
// Handlers are compared by identity on subscribe/unsubscribe,
// so implementations must be comparable (pointer receivers).
type Handler interface {
	Handle(event Event)
}
