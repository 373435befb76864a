package cli

import (
	"chat-client/contract"
	"chat-client/domain/event"
	"context"
	stderrors "errors"
	"time"
)

type Outcome int

const (
	Succeeded Outcome = iota
	Failed
	TimedOut
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Succeeded:
		return "SUCCEEDED"
	case Failed:
		return "FAILED"
	case Cancelled:
		return "CANCELLED"
	default:
		return "TIMED_OUT"
	}
}

// awaiter keeps the first event it receives.
type awaiter struct {
	events chan event.Event
}

func (a *awaiter) Handle(e event.Event) {
	select {
	case a.events <- e:
	default:
	}
}

// Await runs action and waits at most timeout, counted from the call, for a
// success or failure event. Subscriptions are in place before action runs, so
// events published synchronously by action are not missed.
//
// action receives a context bounded by the same timeout and must return once
// it is done: Await always waits for action before returning. A failure that
// arrives after the deadline is reported as TimedOut.
func Await(
	ctx context.Context,
	bus contract.IEventBus,
	success, failure event.Type,
	timeout time.Duration,
	action func(ctx context.Context),
) (Outcome, event.Event) {
	a := &awaiter{events: make(chan event.Event, 1)}
	bus.Subscribe(success, a)
	bus.Subscribe(failure, a)
	defer bus.Unsubscribe(success, a)
	defer bus.Unsubscribe(failure, a)

	actionCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		action(actionCtx)
	}()

	var (
		outcome Outcome
		got     event.Event
	)
	select {
	case got = <-a.events:
		outcome = Failed
		if got.Type == success {
			outcome = Succeeded
		}
	case <-actionCtx.Done():
		outcome = TimedOut
	}
	deadline := stderrors.Is(actionCtx.Err(), context.DeadlineExceeded)
	cancelled := ctx.Err() != nil

	cancel()
	<-done

	switch {
	case outcome == Succeeded:
		return Succeeded, got
	case cancelled:
		return Cancelled, event.Event{}
	case deadline:
		return TimedOut, event.Event{}
	}
	return outcome, got
}
