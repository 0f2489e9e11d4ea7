package session

import (
	"context"
	"fmt"

	"github.com/osse101/PortalQuest_Go/internal/daily"
	"github.com/osse101/PortalQuest_Go/internal/domain"
	"github.com/osse101/PortalQuest_Go/internal/event"
)

// DailyOffer reports today's reward without claiming it
func (m *Manager) DailyOffer(ctx context.Context, name string) (*daily.Offer, error) {
	var offer daily.Offer
	err := m.withSession(ctx, name, func(ctx context.Context, s *Session) error {
		offer = m.deps.Daily.Evaluate(s.player)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

// ClaimDaily grants today's reward and commits the streak
func (m *Manager) ClaimDaily(ctx context.Context, name string) (*DailyOutcome, error) {
	out := &DailyOutcome{}
	err := m.withSession(ctx, name, func(ctx context.Context, s *Session) error {
		res, err := m.deps.Daily.Claim(ctx, s.player)
		if err != nil {
			return err
		}
		out.Claim = res
		m.publish(ctx, event.New(event.DailyClaimed, s.key, event.DailyClaimedPayloadV1{
			Streak:   res.Streak,
			Currency: res.Tier.Currency,
		}))
		m.notify(ctx, s, &out.Notices, domain.NoticeSuccess, fmt.Sprintf(NoticeDailyClaimedFmt, res.Streak, res.Tier.Currency))
		if res.BoostAdded {
			m.notify(ctx, s, &out.Notices, domain.NoticeSuccess, NoticeDailyBoost)
		}
		m.store(ctx, s)
		out.State = s.view(m.deps.Catalog.Items())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
