package handlers

import (
	"chat-client/contract"
	"chat-client/domain"
	"chat-client/domain/event"
)

type UserLeftBroadcastHandler struct {
	bus contract.IEventBus
}

func NewUserLeftBroadcastHandler(bus contract.IEventBus) *UserLeftBroadcastHandler {
	return &UserLeftBroadcastHandler{bus: bus}
}

func (h *UserLeftBroadcastHandler) Handle(session contract.ISession, msg domain.UserLeaveBroadcast) {
	if isSelf(session, msg.Nickname) {
		return
	}
	h.bus.Publish(event.UserLeftType, msg, "UserLeftBroadcastHandler", "")
}
