//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-client/domain"
	"chat-client/domain/event"
	"context"
	"reflect"
)

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// IEventBus decouples message handlers and the session from UI code.
type IEventBus interface {
	Subscribe(t event.Type, handler event.Handler)
	Unsubscribe(t event.Type, handler event.Handler)
	Publish(t event.Type, payload any, source, message string)
}

// ISession is the part of the session message handlers may read and mutate.
type ISession interface {
	Identity() (domain.Identity, bool)
	SetIdentity(identity domain.Identity) error
	ClearIdentity()
}

type IDispatcher interface {
	Dispatch(session ISession, envelope domain.Envelope)
}

// MessageSender writes one whole message to the server.
// Implementations must preserve call order and must not retain payload after returning.
type MessageSender interface {
	Send(msgType domain.MessageType, payload []byte) error
}

// Connection is the transport handle owned by a connected session.
// Callbacks may run on any goroutine owned by the transport.
type Connection interface {
	MessageSender
	OnMessage(callback func(msgType domain.MessageType, payload []byte))
	OnError(callback func(code int, message string))
	// RunReceiveLoop blocks until the connection ends, Shutdown is called or ctx is done.
	RunReceiveLoop(ctx context.Context) error
	Shutdown()
	Close() error
}

type Transport interface {
	Open(ctx context.Context, host string, port int) (Connection, error)
}

type IFileUploader interface {
	Upload(ctx context.Context, sender MessageSender, path string) (domain.UploadedFile, error)
}

// IChatSession is the session surface used by local commands and the terminal UI.
type IChatSession interface {
	Connect(ctx context.Context)
	StartReceiving()
	Login(nickname string)
	Disconnect()
	SendText(message string)
	SendFile(ctx context.Context, path string)
	Identity() (domain.Identity, bool)
	State() domain.ConnectionState
}
