package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/PortalQuest_Go/internal/domain"
)

// Type identifies an event
type Type string

// Event is published by the session manager for one player.
// Player is the save key of the player the event concerns.
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Player  string      `json:"player"`
	Payload interface{} `json:"payload"`
}

// Event types
const (
	Notice          Type = "notice"
	PortalEntered   Type = "portal.entered"
	CombatStarted   Type = "combat.started"
	EnemyAttacked   Type = "combat.enemy_attack"
	CombatEnded     Type = "combat.ended"
	PlayerLeveledUp Type = "player.level_up"
	ItemPurchased   Type = "shop.purchased"
	ArenaStarted    Type = "arena.started"
	ArenaEnded      Type = "arena.ended"
	DailyClaimed    Type = "daily.claimed"
	OracleAnswered  Type = "oracle.answered"
)

// NoticePayloadV1 wraps a player-facing message
type NoticePayloadV1 struct {
	domain.Notice
}

// PortalEnteredPayloadV1 is one portal trip
type PortalEnteredPayloadV1 struct {
	Currency    int    `json:"currency"`
	Experience  int    `json:"experience"`
	StartCombat bool   `json:"start_combat"`
	Flavor      string `json:"flavor,omitempty"`
}

// CombatStartedPayloadV1 announces a new enemy
type CombatStartedPayloadV1 struct {
	EncounterID string           `json:"encounter_id"`
	Name        string           `json:"name"`
	Archetype   domain.Archetype `json:"archetype"`
	Level       int              `json:"level"`
	MaxHealth   int              `json:"max_health"`
}

// EnemyAttackedPayloadV1 is one enemy strike
type EnemyAttackedPayloadV1 struct {
	EncounterID  string `json:"encounter_id"`
	Damage       int    `json:"damage"`
	Burst        bool   `json:"burst"`
	PlayerHealth int    `json:"player_health"`
}

// Combat end reasons
const (
	CombatEndVictory = "victory"
	CombatEndDefeat  = "defeat"
	CombatEndReset   = "reset"
	CombatEndEvicted = "evicted"
)

// CombatEndedPayloadV1 reports how an encounter ended
type CombatEndedPayloadV1 struct {
	EncounterID string           `json:"encounter_id"`
	Archetype   domain.Archetype `json:"archetype"`
	Reason      string           `json:"reason"`
	Currency    int              `json:"currency,omitempty"`
}

// PlayerLeveledUpPayloadV1 reports a level-up cascade
type PlayerLeveledUpPayloadV1 struct {
	OldLevel        int `json:"old_level"`
	NewLevel        int `json:"new_level"`
	CurrencyGranted int `json:"currency_granted"`
}

// ItemPurchasedPayloadV1 is a successful shop purchase
type ItemPurchasedPayloadV1 struct {
	ItemID string `json:"item_id"`
	Cost   int    `json:"cost"`
}

// ArenaStartedPayloadV1 announces the generated opponent
type ArenaStartedPayloadV1 struct {
	Opponent  domain.Opponent `json:"opponent"`
	Generated bool            `json:"generated"`
}

// ArenaEndedPayloadV1 reports the final result of a match
type ArenaEndedPayloadV1 struct {
	Result    domain.ArenaResult `json:"result"`
	Turns     int                `json:"turns"`
	Forfeited bool               `json:"forfeited"`
}

// DailyClaimedPayloadV1 is a claimed daily reward
type DailyClaimedPayloadV1 struct {
	Streak   int `json:"streak"`
	Currency int `json:"currency"`
}

// OracleAnsweredPayloadV1 is a crystal answer
type OracleAnsweredPayloadV1 struct {
	Refunded bool `json:"refunded"`
}

// New builds an event at the current schema version
func New(eventType Type, player string, payload interface{}) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Player:  player,
		Payload: payload,
	}
}

// NewNotice builds a notice event
func NewNotice(player string, kind domain.NoticeKind, message string) Event {
	return New(Notice, player, NoticePayloadV1{Notice: domain.Notice{Kind: kind, Message: message}})
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber of the event type synchronously
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// AllTypes lists every event type the session manager publishes
func AllTypes() []Type {
	return []Type{
		Notice, PortalEntered, CombatStarted, EnemyAttacked, CombatEnded,
		PlayerLeveledUp, ItemPurchased, ArenaStarted, ArenaEnded, DailyClaimed, OracleAnswered,
	}
}
