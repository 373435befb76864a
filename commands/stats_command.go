package commands

import (
	"chat-client/contract"
	"chat-client/domain/event"
	"context"
	"strconv"

	"github.com/samber/lo"
)

// StatsTypes filters the types a counting handler should follow for /stats.
// Local command output is not session traffic, and panic restarts are counted
// by their own handler.
func StatsTypes(types []event.Type) []event.Type {
	return lo.Without(types, event.LocalNoticeType, event.RestartedAfterPanicType)
}

// StatsCommand prints how many events of each type this session has seen.
type StatsCommand struct {
	bus     contract.IEventBus
	counter *event.Counter
}

func NewStatsCommand(bus contract.IEventBus, counter *event.Counter) *StatsCommand {
	return &StatsCommand{bus: bus, counter: counter}
}

func (c *StatsCommand) Name() string        { return "/stats" }
func (c *StatsCommand) Usage() string       { return "/stats" }
func (c *StatsCommand) Description() string { return "Show event counters of this session" }

func (c *StatsCommand) Execute(_ context.Context, _ contract.IChatSession, _ []string) error {
	snapshot := c.counter.Snapshot()
	if len(snapshot) == 0 {
		notice(c.bus, "StatsCommand", "no events yet")
		return nil
	}
	rows := make([][]string, 0, len(snapshot))
	for _, count := range snapshot {
		rows = append(rows, []string{string(count.Type), strconv.FormatUint(count.Value, 10)})
	}
	notice(c.bus, "StatsCommand", renderTable([]string{"Event", "Count"}, rows))
	return nil
}
