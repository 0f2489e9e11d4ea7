package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/osse101/PortalQuest_Go/internal/domain"
	"github.com/osse101/PortalQuest_Go/internal/event"
	"github.com/osse101/PortalQuest_Go/internal/logger"
	"github.com/osse101/PortalQuest_Go/internal/oracle"
)

// EnterPortal grants the portal reward and may start an encounter.
// Flavor text is generated after the state change, outside the session lock.
func (m *Manager) EnterPortal(ctx context.Context, name string) (*PortalOutcome, error) {
	out := &PortalOutcome{}
	var level int
	var flavorSession *Session

	err := m.withSession(ctx, name, func(ctx context.Context, s *Session) error {
		if s.arenaActive() {
			return domain.ErrArenaBusy
		}
		res := m.deps.Portal.Enter(ctx, s.player, s.encounter != nil)
		out.Portal = res
		m.notify(ctx, s, &out.Notices, domain.NoticeInfo,
			fmt.Sprintf(NoticePortalFmt, res.Currency, res.Experience.Gained))
		m.publishGain(ctx, s, &out.Notices, res.Experience)

		if res.StartCombat {
			m.beginEncounter(ctx, s, &out.Notices)
		}
		m.store(ctx, s)

		out.State = s.view(m.deps.Catalog.Items())
		level = s.player.Level
		if m.cfg.PortalFlavor && !s.flavorBusy {
			s.flavorBusy = true
			flavorSession = s
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if flavorSession != nil {
		out.Flavor = m.flavor(ctx, flavorSession, level)
	}
	m.publish(ctx, event.New(event.PortalEntered, m.Key(name), event.PortalEnteredPayloadV1{
		Currency:    out.Portal.Currency,
		Experience:  out.Portal.Experience.Gained,
		StartCombat: out.Portal.StartCombat,
		Flavor:      out.Flavor,
	}))
	return out, nil
}

// flavor asks the generator for one line; one request per session at a time
func (m *Manager) flavor(ctx context.Context, s *Session, level int) string {
	defer func() {
		s.mu.Lock()
		s.flavorBusy = false
		s.mu.Unlock()
	}()
	line, err := m.deps.Oracle.PortalFlavor(ctx, level)
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgFlavorFallback, "error", err)
		return oracle.FallbackFlavor(m.rnd)
	}
	return line
}

// beginEncounter must be called with s.mu held
func (m *Manager) beginEncounter(ctx context.Context, s *Session, notices *[]domain.Notice) {
	enc := m.deps.Combat.Begin(ctx, s.player, m.tickHandler(s))
	s.encounter = enc
	m.publish(ctx, event.New(event.CombatStarted, s.key, event.CombatStartedPayloadV1{
		EncounterID: enc.ID.String(),
		Name:        enc.Name,
		Archetype:   enc.Archetype,
		Level:       enc.Level,
		MaxHealth:   enc.MaxHealth,
	}))
	m.notify(ctx, s, notices, domain.NoticeDanger, fmt.Sprintf(NoticeCombatStartedFmt, enc.Level, enc.Name))
}

// endEncounter stops the attack timer; must be called with s.mu held
func (m *Manager) endEncounter(ctx context.Context, s *Session, reason string) {
	if s.encounter == nil {
		return
	}
	enc := s.encounter
	s.encounter = nil
	m.deps.Combat.End(ctx, enc, reason)
	m.publish(ctx, event.New(event.CombatEnded, s.key, event.CombatEndedPayloadV1{
		EncounterID: enc.ID.String(),
		Archetype:   enc.Archetype,
		Reason:      reason,
	}))
}

// Attack strikes the current enemy
func (m *Manager) Attack(ctx context.Context, name string) (*AttackOutcome, error) {
	out := &AttackOutcome{}
	err := m.withSession(ctx, name, func(ctx context.Context, s *Session) error {
		enc := s.encounter
		res, err := m.deps.Combat.PlayerAttack(ctx, s.player, enc)
		if err != nil {
			return err
		}
		out.Attack = res

		switch {
		case res.Dodged:
			m.notify(ctx, s, &out.Notices, domain.NoticeInfo, NoticeDodged)
		case res.Victory:
			s.encounter = nil
			m.publish(ctx, event.New(event.CombatEnded, s.key, event.CombatEndedPayloadV1{
				EncounterID: enc.ID.String(),
				Archetype:   enc.Archetype,
				Reason:      event.CombatEndVictory,
				Currency:    res.Reward.Currency,
			}))
			m.notify(ctx, s, &out.Notices, domain.NoticeSuccess, fmt.Sprintf(NoticeVictoryFmt, enc.Name, res.Reward.Currency))
			if res.Reward.Doubled {
				m.notify(ctx, s, &out.Notices, domain.NoticeSuccess, NoticeVictoryDoubled)
			}
			m.publishGain(ctx, s, &out.Notices, res.Reward.Experience)
			m.store(ctx, s)
		}

		out.State = s.view(m.deps.Catalog.Items())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// tickHandler resolves enemy attacks for the session. Ticks for an encounter
// that is no longer current are ignored.
func (m *Manager) tickHandler(s *Session) func(uuid.UUID) {
	return func(id uuid.UUID) {
		ctx := logger.WithPlayer(context.Background(), s.key)

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed || s.encounter == nil || s.encounter.ID != id {
			logger.FromContext(ctx).Debug(LogMsgStaleTickIgnored, "encounter", id)
			return
		}

		enc := s.encounter
		res, err := m.deps.Combat.EnemyAttack(ctx, s.player, enc)
		if err != nil {
			return
		}

		var notices []domain.Notice
		m.publish(ctx, event.New(event.EnemyAttacked, s.key, event.EnemyAttackedPayloadV1{
			EncounterID:  enc.ID.String(),
			Damage:       res.Damage,
			Burst:        res.Burst,
			PlayerHealth: res.PlayerHealth,
		}))
		if res.Burst {
			m.notify(ctx, s, &notices, domain.NoticeWarning, fmt.Sprintf(NoticeBurstFmt, res.Damage))
		}
		if res.Defeated {
			s.encounter = nil
			m.publish(ctx, event.New(event.CombatEnded, s.key, event.CombatEndedPayloadV1{
				EncounterID: enc.ID.String(),
				Archetype:   enc.Archetype,
				Reason:      event.CombatEndDefeat,
			}))
			m.notify(ctx, s, &notices, domain.NoticeDanger, fmt.Sprintf(NoticeDefeatFmt, res.CurrencyLost))
		}
		m.store(ctx, s)
	}
}
