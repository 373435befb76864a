package handlers

import (
	"chat-client/contract"
	"chat-client/domain"
	"chat-client/domain/event"
	"chat-client/errors"
)

// ErrorResponseHandler surfaces server-side errors, keeping the server's own code.
type ErrorResponseHandler struct {
	bus contract.IEventBus
}

func NewErrorResponseHandler(bus contract.IEventBus) *ErrorResponseHandler {
	return &ErrorResponseHandler{bus: bus}
}

func (h *ErrorResponseHandler) Handle(_ contract.ISession, msg domain.ServerErrorResponse) {
	h.bus.Publish(event.InternalErrorType,
		event.ErrorDetail{Code: errors.Code(msg.ErrorCode), Message: msg.Message},
		"ErrorResponseHandler", "server reported an error")
}
