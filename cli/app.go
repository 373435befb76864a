package cli

import (
	"bufio"
	"chat-client/commands"
	"chat-client/contract"
	"chat-client/domain/event"
	"chat-client/errors"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

type AppConfig struct {
	ConnectTimeout   time.Duration
	LoginTimeout     time.Duration
	MaxLoginAttempts int
	// Nickname, when set, is used for the first login attempt without prompting.
	Nickname string
}

// App drives one chat session from a line-oriented input.
//
// Connect and login are bounded waits on the bus: a timeout and an explicit
// failure end the wait the same way but are reported differently.
type App struct {
	log      *slog.Logger
	bus      contract.IEventBus
	session  contract.IChatSession
	router   *commands.Router
	renderer *Renderer
	in       io.Reader
	cfg      AppConfig
}

func NewApp(
	log *slog.Logger,
	bus contract.IEventBus,
	session contract.IChatSession,
	router *commands.Router,
	renderer *Renderer,
	in io.Reader,
	cfg AppConfig,
) *App {
	if cfg.MaxLoginAttempts < 1 {
		cfg.MaxLoginAttempts = 1
	}
	return &App{
		log:      log,
		bus:      bus,
		session:  session,
		router:   router,
		renderer: renderer,
		in:       in,
		cfg:      cfg,
	}
}

// Run returns nil when the user quits or the input ends.
func (a *App) Run(ctx context.Context) error {
	lost := newSignal()
	a.bus.Subscribe(event.ConnectionLostType, lost)
	defer a.bus.Unsubscribe(event.ConnectionLostType, lost)

	stop := make(chan struct{})
	defer close(stop)
	lines := readLines(a.in, stop)

	if err := a.connect(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	a.session.StartReceiving()

	if err := a.login(ctx, lines); err != nil {
		a.session.Disconnect()
		if stderrors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	a.renderer.Info("Type a message, or /help for the list of commands")

	return a.chat(ctx, lines, lost)
}

func (a *App) connect(ctx context.Context) error {
	// The dial itself is bounded by the connect timeout.
	outcome, _ := Await(ctx, a.bus, event.ConnectionSuccessType, event.ConnectionFailureType, a.cfg.ConnectTimeout,
		func(ctx context.Context) {
			a.session.Connect(ctx)
		})
	switch outcome {
	case Succeeded:
		return nil
	case Cancelled:
		a.session.Disconnect()
		return ctx.Err()
	case TimedOut:
		a.renderer.Error(fmt.Sprintf("No answer from the server after %s", a.cfg.ConnectTimeout))
		a.session.Disconnect()
		return fmt.Errorf("%w: timed out after %s", errors.ErrConnectionFailed, a.cfg.ConnectTimeout)
	default:
		// The renderer already printed the failure event
		return errors.ErrConnectionFailed
	}
}

func (a *App) login(ctx context.Context, lines <-chan string) error {
	for attempt := 1; attempt <= a.cfg.MaxLoginAttempts; attempt++ {
		automatic := attempt == 1 && a.cfg.Nickname != ""
		nickname := a.cfg.Nickname
		if !automatic {
			a.renderer.Prompt("Nickname: ")
			select {
			case <-ctx.Done():
				return io.EOF
			case line, ok := <-lines:
				if !ok {
					return io.EOF
				}
				nickname = strings.TrimSpace(line)
			}
		}

		outcome, _ := Await(ctx, a.bus, event.LoginSuccessType, event.LoginFailureType, a.cfg.LoginTimeout,
			func(context.Context) {
				a.session.Login(nickname)
			})
		a.log.Debug("Login attempt", "attempt", attempt, "outcome", outcome)
		switch outcome {
		case Succeeded:
			return nil
		case Cancelled:
			return io.EOF
		case TimedOut:
			a.renderer.Error(fmt.Sprintf("No login answer after %s", a.cfg.LoginTimeout))
		case Failed:
			if automatic {
				return fmt.Errorf("%w: automatic login as %q", errors.ErrLoginFailed, nickname)
			}
		}
	}
	a.renderer.Error("Too many login attempts")
	return fmt.Errorf("%w: %d attempts", errors.ErrLoginFailed, a.cfg.MaxLoginAttempts)
}

func (a *App) chat(ctx context.Context, lines <-chan string, lost *signal) error {
	for {
		select {
		case <-ctx.Done():
			a.session.Disconnect()
			return nil
		case <-lost.done:
			a.session.Disconnect()
			return errors.ErrConnectionClosed
		case line, ok := <-lines:
			if !ok {
				a.session.Disconnect()
				return nil
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			if !commands.IsCommand(line) {
				a.session.SendText(line)
				continue
			}
			if err := a.router.Handle(ctx, line, a.session); stderrors.Is(err, errors.ErrQuitRequested) {
				return nil
			} else if err != nil {
				a.log.Error("Command failed", "line", line, "error", err)
			}
		}
	}
}

// readLines feeds lines from r until it ends or stop is closed.
// On a terminal the goroutine stays blocked on the last read until the process exits.
func readLines(r io.Reader, stop <-chan struct{}) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-stop:
				return
			}
		}
	}()
	return lines
}

// signal closes done on the first event it receives.
type signal struct {
	once sync.Once
	done chan struct{}
}

func newSignal() *signal {
	return &signal{done: make(chan struct{})}
}

func (s *signal) Handle(event.Event) {
	s.once.Do(func() { close(s.done) })
}
