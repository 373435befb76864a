package handlers

import (
	"chat-client/contract"
	"chat-client/domain"
	"chat-client/domain/event"
)

type SystemNoticeBroadcastHandler struct {
	bus contract.IEventBus
}

func NewSystemNoticeBroadcastHandler(bus contract.IEventBus) *SystemNoticeBroadcastHandler {
	return &SystemNoticeBroadcastHandler{bus: bus}
}

func (h *SystemNoticeBroadcastHandler) Handle(_ contract.ISession, msg domain.SystemNoticeBroadcast) {
	h.bus.Publish(event.SystemNoticeType, msg, "SystemNoticeBroadcastHandler", "")
}
