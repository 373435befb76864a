package workers

import (
	"chat-client/contract"
	"chat-client/domain/event"
	"chat-client/errors"
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

const defaultRestartDelay = 200 * time.Millisecond

// ExitHook is called once when a supervised worker ends on its own,
// err being nil for a normal return. It is not called after Stop.
type ExitHook func(name string, err error)

// Supervisor Own a context and a Cancel function
// Run each worker in a goroutine
// Restart a worker after a panic
// Report any other exit through the ExitHook, never restart it
// Wait for the end of all goroutines via WaitGroup
type Supervisor struct {
	log          *slog.Logger
	bus          contract.IEventBus
	restartDelay time.Duration
	onExit       ExitHook

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      *sync.WaitGroup
	done    chan struct{}
	workers []contract.Worker
}

func NewSupervisor(log *slog.Logger, bus contract.IEventBus, restartDelay time.Duration) *Supervisor {
	if restartDelay <= 0 {
		restartDelay = defaultRestartDelay
	}
	return &Supervisor{
		log:          log,
		bus:          bus,
		restartDelay: restartDelay,
		wg:           &sync.WaitGroup{},
		done:         make(chan struct{}),
	}
}

func (s *Supervisor) Add(worker ...contract.Worker) *Supervisor {
	s.workers = append(s.workers, worker...)
	return s
}

func (s *Supervisor) WithExitHook(hook ExitHook) *Supervisor {
	s.onExit = hook
	return s
}

// Go starts every worker under a context derived from ctx and returns immediately.
//
//	// If the parent cancels, we Cancel.
//	// If WE call Stop, only our children Cancel.
func (s *Supervisor) Go(ctx context.Context) {
	supervisedCtx, cancel := context.WithCancel(ctx)
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	for _, worker := range s.workers {
		s.Start(supervisedCtx, worker)
	}
	go func() {
		s.wg.Wait()
		cancel()
		close(s.done)
	}()
}

// Run is the blocking form of Go.
func (s *Supervisor) Run(ctx context.Context) {
	s.Go(ctx)
	<-s.done
}

// Start runs a worker under supervision.
// The worker is executed in a dedicated goroutine. If its Run method panics,
// the supervisor recovers, publishes a restart event and runs it again after
// the restart delay. A failure in one worker must not stop the supervisor itself.
func (s *Supervisor) Start(ctx context.Context, worker contract.Worker) {
	s.wg.Add(1)
	workerName := contract.GetWorkerName(worker)

	go func() {
		defer s.wg.Done()

		for {
			if ctx.Err() != nil {
				s.log.Debug(fmt.Sprintf("Stopping : %s", workerName))
				return
			}

			err := func() (err error) {
				defer func() {
					if r := recover(); r != nil {
						err = fmt.Errorf("%w: %v", errors.ErrWorkerPanic, r)
					}
				}()
				return worker.Run(ctx)
			}()

			if ctx.Err() != nil {
				s.log.Debug("Worker stopped (context canceled)", "name", workerName)
				return
			}

			if !stderrors.Is(err, errors.ErrWorkerPanic) {
				// Terminated by itself, never restart !
				s.log.Info(fmt.Sprintf("Worker finished : %s", workerName), "error", err)
				if s.onExit != nil {
					s.onExit(workerName, err)
				}
				return
			}

			s.log.Warn("Worker crashed, restarting", "name", workerName, "error", err)
			if s.bus != nil {
				s.bus.Publish(event.RestartedAfterPanicType,
					event.WorkerRestartedAfterPanic{WorkerName: workerName},
					"Supervisor", err.Error())
			}
			select {
			case <-ctx.Done():
				// Context canceled: priority stop.
				return
			case <-time.After(s.restartDelay):
			}
		}
	}()
}

// Done is closed once every worker has returned.
func (s *Supervisor) Done() <-chan struct{} {
	return s.done
}

// Stop cancels the workers and waits at most timeout for them to return.
// It reports whether they all did.
func (s *Supervisor) Stop(timeout time.Duration) bool {
	s.mu.Lock()
	cancel := s.cancel
	s.mu.Unlock()
	if cancel == nil {
		return true
	}
	cancel()

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-s.done:
		return true
	case <-timer.C:
		return false
	}
}
