package commands

import (
	"chat-client/contract"
	"context"
	"strings"
)

// FileCommand uploads a file. The remaining arguments are joined back so
// paths containing spaces work without quoting.
type FileCommand struct {
	bus contract.IEventBus
}

func NewFileCommand(bus contract.IEventBus) *FileCommand {
	return &FileCommand{bus: bus}
}

func (c *FileCommand) Name() string        { return "/file" }
func (c *FileCommand) Usage() string       { return "/file <path>" }
func (c *FileCommand) Description() string { return "Upload a file to the chat" }

func (c *FileCommand) Execute(ctx context.Context, session contract.IChatSession, args []string) error {
	if len(args) == 0 {
		notice(c.bus, "FileCommand", "usage: "+c.Usage())
		return nil
	}
	session.SendFile(ctx, strings.Join(args, " "))
	return nil
}
