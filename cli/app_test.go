package cli

import (
	"bytes"
	"chat-client/commands"
	"chat-client/domain"
	"chat-client/domain/event"
	"chat-client/errors"
	"chat-client/mocks"
	"chat-client/runtime"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	bus     *runtime.EventBus
	session *mocks.MockIChatSession
	out     *bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	return &fixture{
		bus:     runtime.NewEventBus(log),
		session: mocks.NewMockIChatSession(gomock.NewController(t)),
		out:     &bytes.Buffer{},
	}
}

func (f *fixture) app(in io.Reader, cfg AppConfig) *App {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	renderer := NewRenderer(f.out, false, false)
	for _, typ := range RenderedTypes {
		f.bus.Subscribe(typ, renderer)
	}
	router := commands.NewDefaultRouter(log, f.bus, event.NewCounter())
	return NewApp(log, f.bus, f.session, router, renderer, in, cfg)
}

func (f *fixture) publishes(t event.Type, payload any) func() {
	return func() { f.bus.Publish(t, payload, "test", string(t)) }
}

func (f *fixture) connects() {
	f.session.EXPECT().Connect(gomock.Any()).Do(func(context.Context) {
		f.publishes(event.ConnectionSuccessType, nil)()
	})
	f.session.EXPECT().StartReceiving()
}

func config() AppConfig {
	return AppConfig{
		ConnectTimeout:   50 * time.Millisecond,
		LoginTimeout:     50 * time.Millisecond,
		MaxLoginAttempts: 3,
	}
}

func TestApp_AutomaticLoginThenChatThenQuit(t *testing.T) {
	defer goleak.VerifyNone(t)
	req := require.New(t)
	f := newFixture(t)
	f.connects()
	cfg := config()
	cfg.Nickname = "alice"

	gomock.InOrder(
		f.session.EXPECT().Login("alice").Do(func(string) {
			f.publishes(event.LoginSuccessType, domain.Identity{Nickname: "alice", ClientID: 7})()
		}),
		f.session.EXPECT().SendText("hello everyone"),
		f.session.EXPECT().Disconnect(),
	)

	err := f.app(strings.NewReader("hello everyone\n\n/quit\nnever sent\n"), cfg).Run(context.Background())

	req.NoError(err)
	req.Contains(f.out.String(), "Logged in as alice")
	req.NotContains(f.out.String(), "Nickname:")
}

func TestApp_ConnectionFailure(t *testing.T) {
	defer goleak.VerifyNone(t)
	req := require.New(t)
	f := newFixture(t)
	f.session.EXPECT().Connect(gomock.Any()).Do(func(context.Context) {
		f.publishes(event.ConnectionFailureType, event.NewErrorDetail(errors.CodeConnectionFailed, errors.ErrConnectionFailed))()
	})

	err := f.app(strings.NewReader(""), config()).Run(context.Background())

	req.ErrorIs(err, errors.ErrConnectionFailed)
	req.Contains(f.out.String(), "Connection failed")
	req.NotContains(f.out.String(), "No answer")
}

func TestApp_ConnectionTimeoutIsReportedDifferently(t *testing.T) {
	defer goleak.VerifyNone(t)
	req := require.New(t)
	f := newFixture(t)
	// Given the server never answers
	f.session.EXPECT().Connect(gomock.Any())
	f.session.EXPECT().Disconnect()

	err := f.app(strings.NewReader(""), config()).Run(context.Background())

	req.ErrorIs(err, errors.ErrConnectionFailed)
	req.Contains(f.out.String(), "No answer from the server")
	req.NotContains(f.out.String(), "Connection failed")
}

func TestApp_BlockingDialIsBoundedByConnectTimeout(t *testing.T) {
	defer goleak.VerifyNone(t)
	req := require.New(t)
	f := newFixture(t)
	// Given a dial that only gives up when its context ends
	f.session.EXPECT().Connect(gomock.Any()).Do(func(ctx context.Context) {
		<-ctx.Done()
		f.publishes(event.ConnectionFailureType, event.NewErrorDetail(errors.CodeConnectionFailed, ctx.Err()))()
	})
	f.session.EXPECT().Disconnect()

	err := f.app(strings.NewReader(""), config()).Run(context.Background())

	// Then the connect timeout applies to the dial
	req.ErrorIs(err, errors.ErrConnectionFailed)
	req.Contains(f.out.String(), "No answer from the server")
}

func TestApp_InterruptedWhileConnecting(t *testing.T) {
	defer goleak.VerifyNone(t)
	req := require.New(t)
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	f.session.EXPECT().Connect(gomock.Any()).Do(func(context.Context) { cancel() })
	f.session.EXPECT().Disconnect()

	err := f.app(strings.NewReader(""), config()).Run(ctx)

	req.NoError(err)
	req.NotContains(f.out.String(), "No answer from the server")
}

func TestApp_LoginAttempts(t *testing.T) {
	defer goleak.VerifyNone(t)
	req := require.New(t)
	f := newFixture(t)
	f.connects()

	gomock.InOrder(
		// First attempt: no answer
		f.session.EXPECT().Login("bob"),
		// Second attempt: refused
		f.session.EXPECT().Login("carl").Do(func(string) {
			f.publishes(event.LoginFailureType, event.ErrorDetail{Code: errors.CodeLoginFailure, Message: "nickname taken"})()
		}),
		// Third attempt: accepted
		f.session.EXPECT().Login("dave").Do(func(string) {
			f.publishes(event.LoginSuccessType, domain.Identity{Nickname: "dave", ClientID: 3})()
		}),
		// End of input
		f.session.EXPECT().Disconnect(),
	)

	err := f.app(strings.NewReader("bob\n  carl \ndave\n"), config()).Run(context.Background())

	req.NoError(err)
	output := f.out.String()
	req.Equal(3, strings.Count(output, "Nickname: "))
	req.Equal(1, strings.Count(output, "No login answer"))
	req.Contains(output, "Login failed: nickname taken")
	req.Contains(output, "Logged in as dave")
}

func TestApp_TooManyLoginAttempts(t *testing.T) {
	defer goleak.VerifyNone(t)
	req := require.New(t)
	f := newFixture(t)
	f.connects()
	refuse := func(string) {
		f.publishes(event.LoginFailureType, event.ErrorDetail{Code: errors.CodeLoginFailure, Message: "nickname taken"})()
	}
	f.session.EXPECT().Login(gomock.Any()).Do(refuse).Times(3)
	f.session.EXPECT().Disconnect()

	err := f.app(strings.NewReader("bob\nbob\nbob\nbob\n"), config()).Run(context.Background())

	req.ErrorIs(err, errors.ErrLoginFailed)
	req.Contains(f.out.String(), "Too many login attempts")
}

func TestApp_FailedAutomaticLoginEndsTheFlow(t *testing.T) {
	defer goleak.VerifyNone(t)
	req := require.New(t)
	f := newFixture(t)
	f.connects()
	cfg := config()
	cfg.Nickname = "alice"
	f.session.EXPECT().Login("alice").Do(func(string) {
		f.publishes(event.LoginFailureType, event.ErrorDetail{Code: errors.CodeLoginFailure, Message: "nickname taken"})()
	})
	f.session.EXPECT().Disconnect()

	err := f.app(strings.NewReader("bob\n"), cfg).Run(context.Background())

	req.ErrorIs(err, errors.ErrLoginFailed)
}

func TestApp_ConnectionLostEndsTheChat(t *testing.T) {
	defer goleak.VerifyNone(t)
	req := require.New(t)
	f := newFixture(t)
	f.connects()
	cfg := config()
	cfg.Nickname = "alice"
	// The input stays open: only the lost connection can end the loop
	in, writer := io.Pipe()
	defer writer.Close()

	f.session.EXPECT().Login("alice").Do(func(string) {
		f.publishes(event.LoginSuccessType, domain.Identity{Nickname: "alice", ClientID: 7})()
		f.publishes(event.ConnectionLostType, event.NewErrorDetail(errors.CodeConnectionFailed, errors.ErrConnectionClosed))()
	})
	f.session.EXPECT().Disconnect()

	err := f.app(in, cfg).Run(context.Background())

	req.ErrorIs(err, errors.ErrConnectionClosed)
	req.Contains(f.out.String(), "Connection lost")
}

func TestAwait(t *testing.T) {
	req := require.New(t)
	bus := runtime.NewEventBus(logs.GetLoggerFromLevel(slog.LevelDebug))
	publish := func(t event.Type) func(context.Context) {
		return func(context.Context) { bus.Publish(t, nil, "test", "") }
	}
	ctx := context.Background()

	outcome, e := Await(ctx, bus, event.LoginSuccessType, event.LoginFailureType, time.Second, publish(event.LoginSuccessType))
	req.Equal(Succeeded, outcome)
	req.Equal(event.LoginSuccessType, e.Type)

	outcome, _ = Await(ctx, bus, event.LoginSuccessType, event.LoginFailureType, time.Second, publish(event.LoginFailureType))
	req.Equal(Failed, outcome)

	outcome, _ = Await(ctx, bus, event.LoginSuccessType, event.LoginFailureType, 10*time.Millisecond, func(context.Context) {})
	req.Equal(TimedOut, outcome)
}

func TestAwait_TimeoutBoundsABlockingAction(t *testing.T) {
	defer goleak.VerifyNone(t)
	req := require.New(t)
	bus := runtime.NewEventBus(logs.GetLoggerFromLevel(slog.LevelDebug))

	// Given an action that blocks until its context ends, then reports a failure
	begin := time.Now()
	outcome, _ := Await(context.Background(), bus, event.ConnectionSuccessType, event.ConnectionFailureType, 30*time.Millisecond,
		func(ctx context.Context) {
			<-ctx.Done()
			bus.Publish(event.ConnectionFailureType, nil, "test", ctx.Err().Error())
		})

	// Then the wait ends at the timeout and is reported as such
	req.Equal(TimedOut, outcome)
	req.Less(time.Since(begin), time.Second)
}

func TestAwait_CancelledByCaller(t *testing.T) {
	req := require.New(t)
	bus := runtime.NewEventBus(logs.GetLoggerFromLevel(slog.LevelDebug))
	ctx, cancel := context.WithCancel(context.Background())

	outcome, _ := Await(ctx, bus, event.LoginSuccessType, event.LoginFailureType, time.Second, func(context.Context) {
		cancel()
	})

	req.Equal(Cancelled, outcome)
}
