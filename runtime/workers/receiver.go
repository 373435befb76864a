package workers

import (
	"chat-client/contract"
	"context"
	"log/slog"
)

// ReceiveWorker drives the transport's blocking receive loop.
// Inbound messages reach the session through the callbacks registered on the connection.
type ReceiveWorker struct {
	log  *slog.Logger
	conn contract.Connection
}

func NewReceiveWorker(log *slog.Logger, conn contract.Connection) *ReceiveWorker {
	return &ReceiveWorker{log: log, conn: conn}
}

func (w *ReceiveWorker) Run(ctx context.Context) error {
	w.log.Debug("Receive loop started")
	err := w.conn.RunReceiveLoop(ctx)
	w.log.Debug("Receive loop ended", "error", err)
	return err
}
