package metrics

import (
	"context"

	"github.com/osse101/PortalQuest_Go/internal/event"
	"github.com/osse101/PortalQuest_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.AllTypes() {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.PortalEntered:
		var p event.PortalEnteredPayloadV1
		if p, err = event.DecodePayload[event.PortalEnteredPayloadV1](evt.Payload); err == nil {
			PortalsEntered.Inc()
			CurrencyEarned.Add(float64(p.Currency))
		}

	case event.CombatEnded:
		var p event.CombatEndedPayloadV1
		if p, err = event.DecodePayload[event.CombatEndedPayloadV1](evt.Payload); err == nil {
			CombatsEnded.WithLabelValues(string(p.Archetype), p.Reason).Inc()
			if p.Reason == event.CombatEndVictory {
				CurrencyEarned.Add(float64(p.Currency))
			}
		}

	case event.ArenaEnded:
		var p event.ArenaEndedPayloadV1
		if p, err = event.DecodePayload[event.ArenaEndedPayloadV1](evt.Payload); err == nil {
			ArenaMatches.WithLabelValues(string(p.Result)).Inc()
		}

	case event.ItemPurchased:
		var p event.ItemPurchasedPayloadV1
		if p, err = event.DecodePayload[event.ItemPurchasedPayloadV1](evt.Payload); err == nil {
			ItemsBought.WithLabelValues(p.ItemID).Inc()
			CurrencySpent.Add(float64(p.Cost))
		}

	case event.PlayerLeveledUp:
		var p event.PlayerLeveledUpPayloadV1
		if p, err = event.DecodePayload[event.PlayerLeveledUpPayloadV1](evt.Payload); err == nil {
			LevelUps.Add(float64(p.NewLevel - p.OldLevel))
			CurrencyEarned.Add(float64(p.CurrencyGranted))
		}

	case event.DailyClaimed:
		var p event.DailyClaimedPayloadV1
		if p, err = event.DecodePayload[event.DailyClaimedPayloadV1](evt.Payload); err == nil {
			DailyClaims.Inc()
			CurrencyEarned.Add(float64(p.Currency))
		}

	case event.OracleAnswered:
		var p event.OracleAnsweredPayloadV1
		if p, err = event.DecodePayload[event.OracleAnsweredPayloadV1](evt.Payload); err == nil {
			outcome := OutcomeAnswered
			if p.Refunded {
				outcome = OutcomeRefunded
			}
			OracleQuestions.WithLabelValues(outcome).Inc()
		}
	}

	if err != nil {
		log.Debug(LogMsgEventPayloadUnexpected, "type", evt.Type, "error", err)
		return nil
	}
	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
