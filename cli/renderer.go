// Package cli is the terminal front end: it renders bus events and drives the
// connect, login and chat input flow on top of the session.
package cli

import (
	"chat-client/domain"
	"chat-client/domain/event"
	"chat-client/errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gookit/color"
)

var (
	successStyle = color.New(color.FgGreen)
	failureStyle = color.New(color.FgRed, color.OpBold)
	noticeStyle  = color.New(color.FgYellow)
	authorStyle  = color.New(color.FgCyan, color.OpBold)
	debugStyle   = color.New(color.FgGray)
)

// userFacing codes are always rendered, even outside debug mode.
var userFacing = map[errors.Code]bool{
	errors.CodeAuthRequired:     true,
	errors.CodeConnectionFailed: true,
	errors.CodeNotConnected:     true,
}

// RenderedTypes are the event types a Renderer must be subscribed to.
var RenderedTypes = []event.Type{
	event.ConnectionSuccessType, event.ConnectionFailureType, event.ConnectionLostType,
	event.DisconnectedType, event.LoginSuccessType, event.LoginFailureType,
	event.NewChatMessageType, event.UserJoinedType, event.UserLeftType, event.SystemNoticeType,
	event.FileUploadedType, event.FileUploadFailureType, event.InternalErrorType,
	event.WarningType, event.DiagnosticType, event.RestartedAfterPanicType, event.LocalNoticeType,
}

// Renderer prints events, one line each. Internal errors and diagnostics are
// only shown in debug mode.
type Renderer struct {
	mu      sync.Mutex
	out     io.Writer
	debug   bool
	colours bool
}

func NewRenderer(out io.Writer, debug, colours bool) *Renderer {
	return &Renderer{out: out, debug: debug, colours: colours}
}

func (r *Renderer) Handle(e event.Event) {
	switch e.Type {
	case event.ConnectionSuccessType:
		r.print(successStyle, e.Message)
	case event.ConnectionFailureType:
		r.print(failureStyle, "Connection failed: "+detail(e))
	case event.ConnectionLostType:
		r.print(failureStyle, "Connection lost: "+detail(e))
	case event.DisconnectedType:
		r.print(noticeStyle, "Disconnected")
	case event.LoginSuccessType:
		if identity, ok := e.Payload.(domain.Identity); ok {
			r.print(successStyle, fmt.Sprintf("Logged in as %s", identity.Nickname))
			return
		}
		r.print(successStyle, "Logged in")
	case event.LoginFailureType:
		r.print(failureStyle, "Login failed: "+detail(e))
	case event.NewChatMessageType:
		r.chat(e)
	case event.UserJoinedType:
		if msg, ok := e.Payload.(domain.UserJoinBroadcast); ok {
			r.print(noticeStyle, fmt.Sprintf("* %s joined the chat", msg.Nickname))
		}
	case event.UserLeftType:
		if msg, ok := e.Payload.(domain.UserLeaveBroadcast); ok {
			r.print(noticeStyle, fmt.Sprintf("* %s left the chat", msg.Nickname))
		}
	case event.SystemNoticeType:
		if msg, ok := e.Payload.(domain.SystemNoticeBroadcast); ok {
			r.print(noticeStyle, msg.Notice)
			return
		}
		r.print(noticeStyle, e.Message)
	case event.LocalNoticeType:
		r.print(noticeStyle, e.Message)
	case event.FileUploadedType:
		if file, ok := e.Payload.(domain.UploadedFile); ok {
			r.print(successStyle, fmt.Sprintf("File %s sent (%d bytes, %s)", file.Filename, file.Size, file.MimeType))
			return
		}
		r.print(successStyle, fmt.Sprintf("File %s sent", e.Message))
	case event.FileUploadFailureType:
		r.print(failureStyle, fmt.Sprintf("File %s not sent: %s", e.Message, detail(e)))
	case event.InternalErrorType:
		r.internalError(e)
	default:
		if r.debug {
			r.print(debugStyle, fmt.Sprintf("[%s] %s: %s", e.Type, e.Source, e.Message))
		}
	}
}

func (r *Renderer) chat(e event.Event) {
	msg, ok := e.Payload.(domain.ChatTextBroadcast)
	if !ok {
		return
	}
	at := e.At
	if !msg.Timestamp.IsZero() {
		at = msg.Timestamp.Local()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "[%s] %s: %s\n", at.Format(time.TimeOnly), r.style(authorStyle, msg.Author), msg.Content)
}

func (r *Renderer) internalError(e event.Event) {
	d, ok := e.Payload.(event.ErrorDetail)
	if ok && userFacing[d.Code] {
		r.print(failureStyle, d.Message)
		return
	}
	if r.debug {
		r.print(debugStyle, fmt.Sprintf("[%s] %s: %s", e.Type, e.Source, detail(e)))
	}
}

// Info and Error print lines that do not come from an event.
func (r *Renderer) Info(msg string) {
	r.print(noticeStyle, msg)
}

func (r *Renderer) Error(msg string) {
	r.print(failureStyle, msg)
}

// Prompt prints msg without a line break.
func (r *Renderer) Prompt(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprint(r.out, msg)
}

func (r *Renderer) print(style color.Style, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out, r.style(style, msg))
}

func (r *Renderer) style(style color.Style, msg string) string {
	if !r.colours {
		return msg
	}
	return style.Render(msg)
}

func detail(e event.Event) string {
	if d, ok := e.Payload.(event.ErrorDetail); ok {
		if d.Message == "" {
			return string(d.Code)
		}
		return fmt.Sprintf("%s (%s)", d.Message, d.Code)
	}
	return e.Message
}
