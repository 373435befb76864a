package handlers

import (
	"chat-client/contract"
	"chat-client/domain"
	"chat-client/domain/event"
)

// ChatTextBroadcastHandler drops our own messages, the sender already rendered them.
type ChatTextBroadcastHandler struct {
	bus contract.IEventBus
}

func NewChatTextBroadcastHandler(bus contract.IEventBus) *ChatTextBroadcastHandler {
	return &ChatTextBroadcastHandler{bus: bus}
}

func (h *ChatTextBroadcastHandler) Handle(session contract.ISession, msg domain.ChatTextBroadcast) {
	if isSelf(session, msg.Author) {
		return
	}
	h.bus.Publish(event.NewChatMessageType, msg, "ChatTextBroadcastHandler", "new message")
}
