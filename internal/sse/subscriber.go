package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/PortalQuest_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe forwards every game event type to the hub
func (s *Subscriber) Subscribe() {
	types := event.AllTypes()
	for _, t := range types {
		s.bus.Subscribe(t, s.forward)
	}
	slog.Info(LogMsgSubscriberReady, "types", types)
}

func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	s.hub.Publish(evt.Player, string(evt.Type), evt.Payload)
	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type, "player", evt.Player)
	return nil
}
