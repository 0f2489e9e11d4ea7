package daily

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/PortalQuest_Go/internal/domain"
	"github.com/osse101/PortalQuest_Go/internal/logger"
	"github.com/osse101/PortalQuest_Go/internal/progression"
)

// Offer is the reward a player would receive by claiming today
type Offer struct {
	Today     string `json:"today"`
	Streak    int    `json:"streak"`
	Tier      Tier   `json:"tier"`
	Claimable bool   `json:"claimable"`
}

// ClaimResult is what a successful claim granted
type ClaimResult struct {
	Streak     int  `json:"streak"`
	Tier       Tier `json:"tier"`
	BoostAdded bool `json:"boost_added"`
}

// Service tracks login streaks. Evaluate never mutates; Claim commits the streak.
type Service interface {
	Evaluate(p *domain.Player) Offer
	Claim(ctx context.Context, p *domain.Player) (*ClaimResult, error)
}

type service struct {
	now func() time.Time
}

// NewService creates a daily reward service on the local calendar
func NewService() Service {
	return &service{now: time.Now}
}

// Day formats t as a calendar day string
func Day(t time.Time) string {
	return t.Format(domain.DateLayout)
}

// PendingStreak is the streak a claim on today would commit
func PendingStreak(p *domain.Player, today time.Time) int {
	switch p.LastLogin {
	case Day(today):
		if p.Streak < 1 {
			return 1
		}
		return p.Streak
	case Day(today.AddDate(0, 0, -1)):
		return p.Streak + 1
	default:
		return 1
	}
}

func (s *service) Evaluate(p *domain.Player) Offer {
	today := s.now()
	streak := PendingStreak(p, today)
	return Offer{
		Today:     Day(today),
		Streak:    streak,
		Tier:      TierFor(streak),
		Claimable: p.LastLogin != Day(today),
	}
}

func (s *service) Claim(ctx context.Context, p *domain.Player) (*ClaimResult, error) {
	log := logger.FromContext(ctx)
	offer := s.Evaluate(p)
	if !offer.Claimable {
		log.Debug(LogMsgClaimRejected, "player", p.Name, "day", offer.Today)
		return nil, fmt.Errorf(ErrMsgAlreadyClaimedFmt, offer.Today, domain.ErrAlreadyClaimed)
	}

	progression.AddCurrency(p, offer.Tier.Currency)
	res := &ClaimResult{Streak: offer.Streak, Tier: offer.Tier}
	if offer.Tier.BoostUses > 0 {
		p.AddBuff(domain.BuffXPBoost, domain.BuffXPBoostLabel, offer.Tier.BoostUses)
		res.BoostAdded = true
	}
	p.Streak = offer.Streak
	p.LastLogin = offer.Today

	log.Info(LogMsgDailyClaimed, "player", p.Name, "streak", p.Streak, "currency", offer.Tier.Currency)
	return res, nil
}
