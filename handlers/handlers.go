// Package handlers maps each inbound message type to the domain events it produces.
package handlers

import (
	"chat-client/contract"
	"chat-client/domain"
	"chat-client/runtime"
	"log/slog"
)

// Register binds every server-to-client message type to its handler.
func Register(d *runtime.Dispatcher, log *slog.Logger, bus contract.IEventBus) {
	runtime.Register[domain.UserLoginResponse](d, domain.LoginResponse, NewLoginResponseHandler(log, bus))
	runtime.Register[domain.ChatTextBroadcast](d, domain.ChatText, NewChatTextBroadcastHandler(bus))
	runtime.Register[domain.UserJoinBroadcast](d, domain.UserJoinNotice, NewUserJoinBroadcastHandler(bus))
	runtime.Register[domain.UserLeaveBroadcast](d, domain.UserLeaveNotice, NewUserLeftBroadcastHandler(bus))
	runtime.Register[domain.SystemNoticeBroadcast](d, domain.ServerNotice, NewSystemNoticeBroadcastHandler(bus))
	runtime.Register[domain.ServerErrorResponse](d, domain.ErrorResponse, NewErrorResponseHandler(bus))
}

// isSelf reports whether nickname is the session's own logged-in nickname.
func isSelf(session contract.ISession, nickname string) bool {
	identity, ok := session.Identity()
	return ok && identity.Nickname == nickname
}
