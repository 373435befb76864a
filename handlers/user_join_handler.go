package handlers

import (
	"chat-client/contract"
	"chat-client/domain"
	"chat-client/domain/event"
)

type UserJoinBroadcastHandler struct {
	bus contract.IEventBus
}

func NewUserJoinBroadcastHandler(bus contract.IEventBus) *UserJoinBroadcastHandler {
	return &UserJoinBroadcastHandler{bus: bus}
}

func (h *UserJoinBroadcastHandler) Handle(session contract.ISession, msg domain.UserJoinBroadcast) {
	if isSelf(session, msg.Nickname) {
		return
	}
	h.bus.Publish(event.UserJoinedType, msg, "UserJoinBroadcastHandler", "")
}
