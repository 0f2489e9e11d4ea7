package portal

import (
	"context"

	"github.com/osse101/PortalQuest_Go/internal/domain"
	"github.com/osse101/PortalQuest_Go/internal/logger"
	"github.com/osse101/PortalQuest_Go/internal/progression"
	"github.com/osse101/PortalQuest_Go/internal/utils"
)

// Result is the outcome of one portal trip
type Result struct {
	Currency    int                    `json:"currency"`
	Experience  progression.GainResult `json:"experience"`
	StartCombat bool                   `json:"start_combat"`
}

// Service rolls portal rewards
type Service interface {
	Enter(ctx context.Context, p *domain.Player, inCombat bool) *Result
}

type service struct {
	rnd func() float64 // For rolling RNG
}

// NewService creates a new portal service
func NewService() Service {
	return &service{rnd: utils.RandomFloat}
}

// RewardRange returns the inclusive currency range a portal can pay the player
func RewardRange(p *domain.Player) (int, int) {
	min := BaseMinReward + p.Bonuses.PortalMinBonus
	max := BaseMaxReward + p.Bonuses.PortalMaxBonus
	if max < min {
		max = min
	}
	return min, max
}

// Enter grants currency and experience, then rolls for combat unless one is already running
func (s *service) Enter(ctx context.Context, p *domain.Player, inCombat bool) *Result {
	min, max := RewardRange(p)
	currency := utils.RollInt(s.rnd, min, max)
	progression.AddCurrency(p, currency)
	gain := progression.GainExperience(p, BaseXP)

	res := &Result{Currency: currency, Experience: gain}
	if !inCombat && s.rnd() < CombatChance {
		res.StartCombat = true
	}

	logger.FromContext(ctx).Debug(LogMsgPortalEntered,
		"player", p.Name, "currency", currency, "xp", gain.Gained, "combat", res.StartCombat)
	return res
}
