package commands

import (
	"chat-client/contract"
	"context"
	"strings"

	"github.com/olekukonko/tablewriter"
)

type HelpCommand struct {
	bus    contract.IEventBus
	router *Router
}

func NewHelpCommand(bus contract.IEventBus, router *Router) *HelpCommand {
	return &HelpCommand{bus: bus, router: router}
}

func (c *HelpCommand) Name() string        { return "/help" }
func (c *HelpCommand) Usage() string       { return "/help" }
func (c *HelpCommand) Description() string { return "List the available commands" }

func (c *HelpCommand) Execute(_ context.Context, _ contract.IChatSession, _ []string) error {
	rows := make([][]string, 0, len(c.router.order))
	for _, cmd := range c.router.Commands() {
		rows = append(rows, []string{cmd.Usage(), cmd.Description()})
	}
	notice(c.bus, "HelpCommand", renderTable([]string{"Command", "Description"}, rows))
	return nil
}

// renderTable lays rows out the same way for every command output.
func renderTable(header []string, rows [][]string) string {
	var sb strings.Builder
	table := tablewriter.NewWriter(&sb)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.AppendBulk(rows)
	table.Render()
	return strings.TrimRight(sb.String(), "\n")
}
