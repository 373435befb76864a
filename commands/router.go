// Package commands routes slash commands typed by the user to session actions.
// Commands never touch the network by themselves: they go through the session.
package commands

import (
	"chat-client/contract"
	"chat-client/domain/event"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"
)

const (
	Prefix       = "/"
	routerSource = "CommandRouter"
)

// Command is one local command. Execute returns errors.ErrQuitRequested to end the input loop.
type Command interface {
	Name() string
	Usage() string
	Description() string
	Execute(ctx context.Context, session contract.IChatSession, args []string) error
}

type Router struct {
	log      *slog.Logger
	bus      contract.IEventBus
	commands map[string]Command
	order    []string
}

func NewRouter(log *slog.Logger, bus contract.IEventBus) *Router {
	return &Router{
		log:      log,
		bus:      bus,
		commands: make(map[string]Command),
	}
}

// Register adds commands; a later command replaces an earlier one with the same name.
func (r *Router) Register(commands ...Command) *Router {
	for _, cmd := range commands {
		if _, exists := r.commands[cmd.Name()]; !exists {
			r.order = append(r.order, cmd.Name())
		}
		r.commands[cmd.Name()] = cmd
	}
	return r
}

// Commands returns the registered commands in registration order.
func (r *Router) Commands() []Command {
	return lo.Map(r.order, func(name string, _ int) Command {
		return r.commands[name]
	})
}

// IsCommand reports whether line is meant for the router rather than the chat.
func IsCommand(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), Prefix)
}

// Parse splits a command line into its leading token and whitespace separated arguments.
// The token is lower-cased so "/QUIT" and "/quit" are the same command.
func Parse(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// Route runs the command registered for token. Unknown tokens only produce a
// local SYSTEM_NOTICE.
func (r *Router) Route(ctx context.Context, token string, args []string, session contract.IChatSession) error {
	cmd, ok := r.commands[token]
	if !ok {
		r.log.Debug("Unknown command", "token", token)
		notice(r.bus, routerSource, fmt.Sprintf("unknown command %s, type /help for the list of commands", token))
		return nil
	}
	r.log.Debug("Running command", "command", token, "args", len(args))
	return cmd.Execute(ctx, session, args)
}

// Handle parses line and routes it.
func (r *Router) Handle(ctx context.Context, line string, session contract.IChatSession) error {
	token, args := Parse(line)
	return r.Route(ctx, token, args, session)
}

func notice(bus contract.IEventBus, source, text string) {
	bus.Publish(event.LocalNoticeType, nil, source, text)
}
