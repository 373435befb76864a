package services

import (
	"chat-client/contract"
	"chat-client/domain"
	"chat-client/domain/event"
	"chat-client/errors"
	"chat-client/runtime/workers"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const (
	sessionSource        = "Session"
	defaultShutdownDelay = 3 * time.Second
)

type SessionConfig struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
	RestartDelay    time.Duration
}

// Session is the connection and login state machine.
// State and identity are guarded by mu: they are read by the foreground
// caller and written by transport callbacks running on the receive goroutine.
// Events are never published while mu is held, so bus subscribers may call
// back into the session.
type Session struct {
	log        *slog.Logger
	bus        contract.IEventBus
	transport  contract.Transport
	dispatcher contract.IDispatcher
	uploader   contract.IFileUploader
	cfg        SessionConfig

	mu       sync.Mutex
	state    domain.ConnectionState
	identity *domain.Identity
	conn     contract.Connection
	receiver *workers.Supervisor
}

var (
	_ contract.ISession     = (*Session)(nil)
	_ contract.IChatSession = (*Session)(nil)
)

func NewSession(
	log *slog.Logger,
	bus contract.IEventBus,
	transport contract.Transport,
	dispatcher contract.IDispatcher,
	uploader contract.IFileUploader,
	cfg SessionConfig,
) *Session {
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownDelay
	}
	return &Session{
		log:        log,
		bus:        bus,
		transport:  transport,
		dispatcher: dispatcher,
		uploader:   uploader,
		cfg:        cfg,
		state:      domain.Disconnected,
	}
}

// Connect opens the transport and publishes CONNECTION_SUCCESS or CONNECTION_FAILURE.
// Calling it while not disconnected only logs a warning.
func (s *Session) Connect(ctx context.Context) {
	s.mu.Lock()
	if s.state != domain.Disconnected {
		state := s.state
		s.mu.Unlock()
		s.log.Warn("Connect ignored", "state", state)
		return
	}
	s.state = domain.Connecting
	s.mu.Unlock()

	address := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	conn, err := s.transport.Open(ctx, s.cfg.Host, s.cfg.Port)
	if err != nil {
		s.setState(domain.Disconnected)
		s.log.Error("Connection failed", "address", address, "error", err)
		s.bus.Publish(event.ConnectionFailureType,
			event.NewErrorDetail(errors.CodeConnectionFailed, err),
			sessionSource, fmt.Sprintf("unable to connect to %s", address))
		return
	}

	// Callbacks are bound before any receive loop can run.
	conn.OnMessage(s.onMessage)
	conn.OnError(s.onError)

	s.mu.Lock()
	if s.state != domain.Connecting {
		// Disconnect won the race while the dial was in flight.
		s.mu.Unlock()
		s.log.Warn("Connection abandoned", "address", address)
		_ = conn.Close()
		return
	}
	s.conn = conn
	s.state = domain.Connected
	s.mu.Unlock()

	s.log.Info("Connected", "address", address)
	s.bus.Publish(event.ConnectionSuccessType, nil, sessionSource, fmt.Sprintf("connected to %s", address))
}

// StartReceiving launches the supervised receive loop once per connection.
func (s *Session) StartReceiving() {
	s.mu.Lock()
	if !s.state.HasTransport() {
		s.mu.Unlock()
		s.bus.Publish(event.InternalErrorType,
			event.NewErrorDetail(errors.CodeNotConnected, errors.ErrNotConnected),
			sessionSource, "cannot receive without a connection")
		return
	}
	if s.receiver != nil {
		s.mu.Unlock()
		s.log.Debug("Receive loop already running")
		return
	}
	conn := s.conn
	receiver := workers.NewSupervisor(s.log, s.bus, s.cfg.RestartDelay).
		Add(workers.NewReceiveWorker(s.log, conn)).
		WithExitHook(func(name string, err error) {
			s.connectionLost(conn, err)
		})
	s.receiver = receiver
	receiver.Go(context.Background())
	s.mu.Unlock()

	s.bus.Publish(event.DiagnosticType,
		event.Diagnostic{Component: "ReceiveWorker", Status: "started"},
		sessionSource, "receive loop started")
}

// Login sends a login request. The outcome arrives later as LOGIN_SUCCESS or
// LOGIN_FAILURE through the dispatch pipeline. Local rejections publish exactly
// one LOGIN_FAILURE and send nothing.
func (s *Session) Login(nickname string) {
	s.mu.Lock()
	state := s.state
	conn := s.conn
	var reject error
	switch {
	case !state.HasTransport():
		reject = errors.ErrNotConnected
	case state == domain.LoggedIn:
		reject = errors.ErrAlreadyLoggedIn
	default:
		if err := domain.Validate(domain.UserLoginRequest{Nickname: nickname}); err != nil {
			reject = fmt.Errorf("%w: %q", errors.ErrInvalidNickname, nickname)
		}
	}
	if reject == nil {
		s.state = domain.LoggingIn
	}
	s.mu.Unlock()

	if reject != nil {
		s.log.Debug("Login rejected locally", "state", state, "error", reject)
		s.bus.Publish(event.LoginFailureType,
			event.NewErrorDetail(errors.CodeOf(reject), reject),
			sessionSource, reject.Error())
		return
	}

	payload, err := domain.Encode(domain.UserLoginRequest{Nickname: nickname})
	if err == nil {
		err = conn.Send(domain.LoginRequest, payload)
	}
	if err != nil {
		s.mu.Lock()
		if s.state == domain.LoggingIn {
			s.state = domain.Connected
		}
		s.mu.Unlock()
		s.log.Error("Login request not sent", "error", err)
		s.bus.Publish(event.LoginFailureType,
			event.NewErrorDetail(errors.CodeOf(transportFailure(err)), err),
			sessionSource, "login request could not be sent")
		return
	}
	s.log.Debug("Login requested", "nickname", nickname)
}

// Disconnect stops the receive loop, releases the transport and clears identity.
// It is idempotent and publishes DISCONNECTED only when something was torn down.
//
// It must not be called from the receive loop (a transport callback or an event
// subscriber reached from one): it waits for that loop to return.
func (s *Session) Disconnect() {
	s.mu.Lock()
	if s.state == domain.Disconnected || s.state == domain.Disconnecting {
		s.mu.Unlock()
		return
	}
	s.state = domain.Disconnecting
	conn, receiver := s.conn, s.receiver
	s.mu.Unlock()

	if conn != nil {
		conn.Shutdown()
	}
	if receiver != nil && !receiver.Stop(s.cfg.ShutdownTimeout) {
		s.log.Warn("Receive loop did not stop in time", "timeout", s.cfg.ShutdownTimeout)
	}
	if conn != nil {
		if err := conn.Close(); err != nil {
			s.log.Debug("Close failed", "error", err)
		}
	}

	s.mu.Lock()
	s.state = domain.Disconnected
	s.identity = nil
	s.conn = nil
	s.receiver = nil
	s.mu.Unlock()

	s.log.Info("Disconnected")
	s.bus.Publish(event.DisconnectedType, nil, sessionSource, "disconnected")
}

// SendText sends a chat message. Blank messages are dropped silently.
func (s *Session) SendText(message string) {
	conn, ok := s.loggedInConn()
	if !ok {
		s.bus.Publish(event.InternalErrorType,
			event.NewErrorDetail(errors.CodeAuthRequired, errors.ErrAuthRequired),
			sessionSource, "login before sending messages")
		return
	}
	if strings.TrimSpace(message) == "" {
		return
	}

	payload, err := domain.Encode(domain.ChatTextRequest{Message: message})
	if err == nil {
		err = conn.Send(domain.ChatText, payload)
	}
	if err != nil {
		s.log.Error("Message not sent", "error", err)
		s.bus.Publish(event.InternalErrorType,
			event.NewErrorDetail(errors.CodeOf(err), err),
			sessionSource, "message could not be sent")
	}
}

// SendFile uploads path with the chunked file transfer protocol and publishes
// FILE_UPLOADED or FILE_UPLOAD_FAILURE. It blocks for the whole transfer.
func (s *Session) SendFile(ctx context.Context, path string) {
	conn, ok := s.loggedInConn()
	if !ok {
		s.bus.Publish(event.InternalErrorType,
			event.NewErrorDetail(errors.CodeAuthRequired, errors.ErrAuthRequired),
			sessionSource, "login before sending files")
		return
	}

	filename := filepath.Base(path)
	info, err := os.Stat(path)
	switch {
	case err != nil:
		err = readFailure(err)
	case !info.Mode().IsRegular():
		err = fmt.Errorf("%w: %s", errors.ErrNotFile, path)
	}
	if err != nil {
		s.bus.Publish(event.FileUploadFailureType,
			event.NewErrorDetail(errors.CodeOf(err), err), sessionSource, filename)
		return
	}

	uploaded, err := s.uploader.Upload(ctx, conn, path)
	if err != nil {
		s.log.Error("File upload failed", "filename", filename, "error", err)
		s.bus.Publish(event.FileUploadFailureType,
			event.NewErrorDetail(errors.CodeOf(err), err), sessionSource, filename)
		return
	}
	s.bus.Publish(event.FileUploadedType, uploaded, sessionSource, uploaded.Filename)
}

func (s *Session) Identity() (domain.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.identity == nil {
		return domain.Identity{}, false
	}
	return *s.identity, true
}

// SetIdentity is called by the login response handler only.
func (s *Session) SetIdentity(identity domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.HasTransport() {
		return errors.ErrNotConnected
	}
	s.identity = &identity
	s.state = domain.LoggedIn
	return nil
}

func (s *Session) ClearIdentity() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
	if s.state == domain.LoggedIn || s.state == domain.LoggingIn {
		s.state = domain.Connected
	}
}

func (s *Session) State() domain.ConnectionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) IsConnected() bool {
	return s.State().HasTransport()
}

func (s *Session) IsLoggedIn() bool {
	return s.State() == domain.LoggedIn
}

func (s *Session) setState(state domain.ConnectionState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *Session) loggedInConn() (contract.Connection, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != domain.LoggedIn || s.conn == nil {
		return nil, false
	}
	return s.conn, true
}

// onMessage runs on the transport's receive goroutine.
func (s *Session) onMessage(msgType domain.MessageType, payload []byte) {
	s.dispatcher.Dispatch(s, domain.Envelope{Type: msgType, Payload: payload})
}

// onError runs on the transport's receive goroutine.
func (s *Session) onError(code int, message string) {
	s.log.Warn("Transport error", "code", code, "message", message)
	s.bus.Publish(event.InternalErrorType,
		event.ErrorDetail{Code: errors.CodeTransportError, Message: message, TransportCode: code},
		sessionSource, message)
}

// connectionLost is the exit hook of the receive loop. It only reports: the
// caller decides to Disconnect from its own goroutine.
func (s *Session) connectionLost(conn contract.Connection, err error) {
	s.mu.Lock()
	current := s.conn == conn && s.state.HasTransport()
	s.mu.Unlock()
	if !current {
		return
	}
	if err == nil {
		err = errors.ErrConnectionClosed
	}
	s.log.Warn("Connection lost", "error", err)
	s.bus.Publish(event.ConnectionLostType,
		event.NewErrorDetail(errors.CodeConnectionFailed, err),
		sessionSource, "connection to the server was lost")
}
