package event

import (
	"chat-client/domain"
	"log/slog"
	"time"
)

// LatencyHandler logs how long a chat broadcast took to reach this client.
type LatencyHandler struct {
	log              *slog.Logger
	latencyThreshold time.Duration
}

func NewLatencyHandler(log *slog.Logger, latencyThreshold time.Duration) *LatencyHandler {
	return &LatencyHandler{log: log, latencyThreshold: latencyThreshold}
}

func (h *LatencyHandler) Handle(e Event) {
	payload, ok := e.Payload.(domain.ChatTextBroadcast)
	if !ok || payload.Timestamp.IsZero() {
		return
	}
	leadTime := e.At.Sub(payload.Timestamp.Time)

	h.log.Debug("telemetry: delivery latency",
		"author", payload.Author,
		"lead_time_ms", leadTime.Milliseconds(),
	)

	if leadTime > h.latencyThreshold {
		h.log.Warn("high latency detected", "author", payload.Author, "lead_time", leadTime)
	}
}
