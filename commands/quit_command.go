package commands

import (
	"chat-client/contract"
	"chat-client/errors"
	"context"
)

// QuitCommand disconnects the session and ends the input loop.
// It is registered twice, as /quit and /exit.
type QuitCommand struct {
	name string
}

func NewQuitCommand(name string) *QuitCommand {
	return &QuitCommand{name: name}
}

func (c *QuitCommand) Name() string        { return c.name }
func (c *QuitCommand) Usage() string       { return c.name }
func (c *QuitCommand) Description() string { return "Disconnect and leave the chat" }

func (c *QuitCommand) Execute(_ context.Context, session contract.IChatSession, _ []string) error {
	session.Disconnect()
	return errors.ErrQuitRequested
}
