package runtime

import (
	"chat-client/contract"
	"chat-client/domain"
	"chat-client/domain/event"
	"chat-client/errors"
	"fmt"
	"log/slog"
)

const dispatcherSource = "Dispatcher"

// MessageHandler turns one decoded inbound message into domain events.
type MessageHandler[T any] interface {
	Handle(session contract.ISession, msg T)
}

type route func(session contract.ISession, payload []byte) error

// Dispatcher routes inbound envelopes by message type tag.
// The routing table is filled once at startup; Register must not be called
// once envelopes are being dispatched.
type Dispatcher struct {
	log    *slog.Logger
	bus    contract.IEventBus
	routes map[domain.MessageType]route
}

func NewDispatcher(log *slog.Logger, bus contract.IEventBus) *Dispatcher {
	return &Dispatcher{
		log:    log,
		bus:    bus,
		routes: make(map[domain.MessageType]route),
	}
}

// Register binds msgType to the payload schema T and its handler.
func Register[T any](d *Dispatcher, msgType domain.MessageType, handler MessageHandler[T]) {
	d.routes[msgType] = func(session contract.ISession, payload []byte) error {
		msg, err := domain.Decode[T](payload)
		if err != nil {
			return err
		}
		handler.Handle(session, msg)
		return nil
	}
}

func (d *Dispatcher) Registered(msgType domain.MessageType) bool {
	_, ok := d.routes[msgType]
	return ok
}

// Dispatch decodes envelope and hands it to its handler.
// Unknown tags publish a WARNING and undecodable payloads an INTERNAL_ERROR;
// neither is fatal.
func (d *Dispatcher) Dispatch(session contract.ISession, envelope domain.Envelope) {
	handle, ok := d.routes[envelope.Type]
	if !ok {
		d.log.Warn("Unknown message type", "type", int(envelope.Type), "size", len(envelope.Payload))
		d.bus.Publish(event.WarningType,
			event.Warning{MessageType: int(envelope.Type), Reason: errors.ErrUnknownMessageType.Error()},
			dispatcherSource,
			fmt.Sprintf("unknown message type %d", int(envelope.Type)),
		)
		return
	}

	if err := handle(session, envelope.Payload); err != nil {
		d.log.Debug("Invalid payload", "type", envelope.Type.String(), "error", err)
		d.bus.Publish(event.InternalErrorType,
			event.NewErrorDetail(errors.CodeUnknown, err),
			dispatcherSource,
			fmt.Sprintf("invalid %s payload", envelope.Type),
		)
	}
}
