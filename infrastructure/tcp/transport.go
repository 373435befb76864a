package tcp

import (
	"chat-client/contract"
	"chat-client/domain"
	"chat-client/errors"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"sync"
	"syscall"
	"time"
)

// UnknownErrorCode is reported to the error callback when a failure carries no errno.
const UnknownErrorCode = -1

type Transport struct {
	log          *slog.Logger
	dialTimeout  time.Duration
	maxFrameSize int
}

func NewTransport(log *slog.Logger, dialTimeout time.Duration, maxFrameSize int) *Transport {
	return &Transport{log: log, dialTimeout: dialTimeout, maxFrameSize: maxFrameSize}
}

func (t *Transport) Open(ctx context.Context, host string, port int) (contract.Connection, error) {
	address := net.JoinHostPort(host, strconv.Itoa(port))
	dialer := net.Dialer{Timeout: t.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrConnectionFailed, err)
	}
	t.log.Debug("TCP connection established", "address", address)
	return NewConnection(t.log, conn, t.maxFrameSize), nil
}

// Connection owns one net.Conn.
// Sends are serialized so frames are written whole and in call order.
// Callbacks run on the goroutine calling RunReceiveLoop.
type Connection struct {
	log    *slog.Logger
	conn   net.Conn
	reader *FrameReader

	writeMu sync.Mutex

	cbMu      sync.RWMutex
	onMessage func(msgType domain.MessageType, payload []byte)
	onError   func(code int, message string)

	shutdown     chan struct{}
	shutdownOnce sync.Once
	closeOnce    sync.Once
	closeErr     error
}

var _ contract.Connection = (*Connection)(nil)

func NewConnection(log *slog.Logger, conn net.Conn, maxFrameSize int) *Connection {
	return &Connection{
		log:       log,
		conn:      conn,
		reader:    NewFrameReader(conn, maxFrameSize),
		onMessage: func(domain.MessageType, []byte) {},
		onError:   func(int, string) {},
		shutdown:  make(chan struct{}),
	}
}

func (c *Connection) OnMessage(callback func(msgType domain.MessageType, payload []byte)) {
	if callback == nil {
		return
	}
	c.cbMu.Lock()
	defer c.cbMu.Unlock()
	c.onMessage = callback
}

func (c *Connection) OnError(callback func(code int, message string)) {
	if callback == nil {
		return
	}
	c.cbMu.Lock()
	defer c.cbMu.Unlock()
	c.onError = callback
}

func (c *Connection) Send(msgType domain.MessageType, payload []byte) error {
	frame, err := EncodeFrame(msgType, payload)
	if err != nil {
		return err
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if c.stopping() {
		return errors.ErrConnectionClosed
	}
	if _, err := c.conn.Write(frame); err != nil {
		return fmt.Errorf("%w: send %s: %w", errors.ErrConnectionFailed, msgType, err)
	}
	return nil
}

// RunReceiveLoop reads frames until the peer closes, a read fails, Shutdown is
// called or ctx is done. The last two return nil.
func (c *Connection) RunReceiveLoop(ctx context.Context) error {
	stop := context.AfterFunc(ctx, c.interruptRead)
	defer stop()

	for {
		envelope, err := c.reader.ReadFrame()
		if err != nil {
			return c.receiveFailure(ctx, err)
		}
		c.cbMu.RLock()
		onMessage := c.onMessage
		c.cbMu.RUnlock()
		onMessage(envelope.Type, envelope.Payload)
	}
}

func (c *Connection) receiveFailure(ctx context.Context, err error) error {
	if c.stopping() || ctx.Err() != nil {
		c.log.Debug("Receive loop interrupted")
		return nil
	}
	if stderrors.Is(err, io.EOF) {
		c.log.Info("Server closed the connection")
		return errors.ErrConnectionClosed
	}

	code := UnknownErrorCode
	var errno syscall.Errno
	switch {
	case stderrors.Is(err, errors.ErrFrameTooLarge):
		code = int(syscall.EMSGSIZE)
	case stderrors.As(err, &errno):
		code = int(errno)
	}
	c.cbMu.RLock()
	onError := c.onError
	c.cbMu.RUnlock()
	onError(code, err.Error())
	return fmt.Errorf("%w: %w", errors.ErrConnectionFailed, err)
}

// Shutdown stops the receive loop and rejects further sends. It does not release the socket.
func (c *Connection) Shutdown() {
	c.shutdownOnce.Do(func() {
		close(c.shutdown)
		c.interruptRead()
	})
}

// Close shuts the connection down and releases the socket. Only the first call does anything.
func (c *Connection) Close() error {
	c.closeOnce.Do(func() {
		c.Shutdown()
		c.closeErr = c.conn.Close()
	})
	return c.closeErr
}

func (c *Connection) stopping() bool {
	select {
	case <-c.shutdown:
		return true
	default:
		return false
	}
}

// interruptRead unblocks a pending read.
func (c *Connection) interruptRead() {
	_ = c.conn.SetReadDeadline(time.Now())
}
