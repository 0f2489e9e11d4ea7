package session

import (
	"github.com/osse101/PortalQuest_Go/internal/combat"
	"github.com/osse101/PortalQuest_Go/internal/daily"
	"github.com/osse101/PortalQuest_Go/internal/domain"
	"github.com/osse101/PortalQuest_Go/internal/duel"
	"github.com/osse101/PortalQuest_Go/internal/economy"
	"github.com/osse101/PortalQuest_Go/internal/portal"
)

// LoginResult is returned by Login
type LoginResult struct {
	State      View            `json:"state"`
	FreshStart bool            `json:"fresh_start"`
	Reason     string          `json:"reason,omitempty"`
	Daily      daily.Offer     `json:"daily"`
	Notices    []domain.Notice `json:"notices"`
}

// PortalOutcome is returned by EnterPortal
type PortalOutcome struct {
	Portal  *portal.Result  `json:"portal"`
	Flavor  string          `json:"flavor,omitempty"`
	State   View            `json:"state"`
	Notices []domain.Notice `json:"notices"`
}

// AttackOutcome is returned by Attack
type AttackOutcome struct {
	Attack  *combat.AttackResult `json:"attack"`
	State   View                 `json:"state"`
	Notices []domain.Notice      `json:"notices"`
}

// PurchaseOutcome is returned by Buy
type PurchaseOutcome struct {
	Purchase *economy.PurchaseResult `json:"purchase"`
	State    View                    `json:"state"`
	Notices  []domain.Notice         `json:"notices"`
}

// AskOutcome is returned by Ask
type AskOutcome struct {
	Answer   string          `json:"answer"`
	Refunded bool            `json:"refunded"`
	State    View            `json:"state"`
	Notices  []domain.Notice `json:"notices"`
}

// ArenaOutcome is returned by the arena triggers. Turn is set only by ArenaAction.
type ArenaOutcome struct {
	Turn      *duel.TurnResult `json:"turn,omitempty"`
	Generated bool             `json:"generated,omitempty"`
	State     View             `json:"state"`
	Notices   []domain.Notice  `json:"notices"`
}

// DailyOutcome is returned by ClaimDaily
type DailyOutcome struct {
	Claim   *daily.ClaimResult `json:"claim"`
	State   View               `json:"state"`
	Notices []domain.Notice    `json:"notices"`
}
