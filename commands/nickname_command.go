package commands

import (
	"chat-client/contract"
	"context"
	"fmt"
)

type NicknameCommand struct {
	bus contract.IEventBus
}

func NewNicknameCommand(bus contract.IEventBus) *NicknameCommand {
	return &NicknameCommand{bus: bus}
}

func (c *NicknameCommand) Name() string        { return "/nickname" }
func (c *NicknameCommand) Usage() string       { return "/nickname" }
func (c *NicknameCommand) Description() string { return "Show the nickname of this session" }

func (c *NicknameCommand) Execute(_ context.Context, session contract.IChatSession, _ []string) error {
	identity, ok := session.Identity()
	if !ok {
		notice(c.bus, "NicknameCommand", "you are not logged in")
		return nil
	}
	notice(c.bus, "NicknameCommand", fmt.Sprintf("you are %s (client id %d)", identity.Nickname, identity.ClientID))
	return nil
}
