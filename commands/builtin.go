package commands

import (
	"chat-client/contract"
	"chat-client/domain/event"
	"log/slog"
)

// NewDefaultRouter registers every built-in command.
func NewDefaultRouter(log *slog.Logger, bus contract.IEventBus, counter *event.Counter) *Router {
	router := NewRouter(log, bus)
	router.Register(
		NewQuitCommand("/quit"),
		NewQuitCommand("/exit"),
		NewNicknameCommand(bus),
		NewFileCommand(bus),
		NewStatsCommand(bus, counter),
	)
	router.Register(NewHelpCommand(bus, router))
	return router
}
