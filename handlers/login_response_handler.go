package handlers

import (
	"chat-client/contract"
	"chat-client/domain"
	"chat-client/domain/event"
	"chat-client/errors"
	"log/slog"
)

const loginResponseSource = "UserLoginResponseHandler"

// LoginResponseHandler is the only path that establishes the session identity.
type LoginResponseHandler struct {
	log *slog.Logger
	bus contract.IEventBus
}

func NewLoginResponseHandler(log *slog.Logger, bus contract.IEventBus) *LoginResponseHandler {
	return &LoginResponseHandler{log: log, bus: bus}
}

func (h *LoginResponseHandler) Handle(session contract.ISession, msg domain.UserLoginResponse) {
	if !msg.Success {
		session.ClearIdentity()
		h.bus.Publish(event.LoginFailureType,
			event.ErrorDetail{Code: errors.CodeLoginFailure, Message: msg.Message},
			loginResponseSource, "login rejected by server")
		return
	}

	identity := domain.Identity{Nickname: msg.Nickname, ClientID: msg.ClientID}
	if err := session.SetIdentity(identity); err != nil {
		h.log.Warn("Login response ignored", "nickname", msg.Nickname, "error", err)
		h.bus.Publish(event.InternalErrorType, event.NewErrorDetail(errors.CodeOf(err), err),
			loginResponseSource, "login response ignored")
		return
	}
	h.log.Info("Logged in", "nickname", identity.Nickname, "client_id", identity.ClientID)
	h.bus.Publish(event.LoginSuccessType, identity, loginResponseSource, "login succeeded")
}
