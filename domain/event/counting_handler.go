package event

// CountingHandler counts every event it receives.
// Subscribe it to each type that should show up in the session statistics.
type CountingHandler struct {
	counter *Counter
}

func NewCountingHandler(counter *Counter) *CountingHandler {
	return &CountingHandler{counter: counter}
}

func (h *CountingHandler) Handle(event Event) {
	h.counter.Increment(event.Type)
}
