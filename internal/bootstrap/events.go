package bootstrap

import (
	"log/slog"

	"github.com/osse101/PortalQuest_Go/internal/event"
	"github.com/osse101/PortalQuest_Go/internal/metrics"
	"github.com/osse101/PortalQuest_Go/internal/sse"
)

// InitializeEventSystem creates the event bus and attaches its consumers:
// the SSE hub that pushes events to players and the prometheus collector.
func InitializeEventSystem(hub *sse.Hub) *event.MemoryBus {
	bus := event.NewMemoryBus()

	sse.NewSubscriber(hub, bus).Subscribe()
	metrics.NewEventMetricsCollector().Register(bus)

	slog.Info(LogMsgEventSystemReady, "event_types", len(event.AllTypes()))
	return bus
}
