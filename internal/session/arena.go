package session

import (
	"context"
	"fmt"

	"github.com/osse101/PortalQuest_Go/internal/cooldown"
	"github.com/osse101/PortalQuest_Go/internal/domain"
	"github.com/osse101/PortalQuest_Go/internal/duel"
	"github.com/osse101/PortalQuest_Go/internal/event"
	"github.com/osse101/PortalQuest_Go/internal/logger"
)

// arenaActive must be called with s.mu held
func (s *Session) arenaActive() bool {
	return s.arena != nil && s.arena.Phase != domain.ArenaMatchOver
}

// OpenArena opens a match and fills it with a generated opponent.
// Generation runs outside the session lock; the arena waits in AwaitingOpponent meanwhile.
func (m *Manager) OpenArena(ctx context.Context, name string) (*ArenaOutcome, error) {
	key := m.Key(name)
	onCooldown, remaining, err := m.deps.Cooldowns.CheckCooldown(ctx, key, domain.ActionArena)
	if err != nil {
		return nil, err
	}
	if onCooldown {
		return nil, cooldown.ErrOnCooldown{Action: domain.ActionArena, Remaining: remaining}
	}

	var arena *domain.Arena
	var playerName string
	var level int
	err = m.withSession(ctx, name, func(ctx context.Context, s *Session) error {
		if s.arenaActive() {
			return domain.ErrArenaBusy
		}
		if s.encounter != nil {
			return fmt.Errorf(ErrMsgArenaCombatFmt, domain.ErrAlreadyInCombat)
		}
		arena = m.deps.Duel.Open(s.player)
		s.arena = arena
		playerName = s.player.Name
		level = s.player.Level
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := &ArenaOutcome{Generated: true}
	opp, genErr := m.deps.Oracle.GenerateOpponent(ctx, playerName, level)
	if genErr != nil {
		logger.FromContext(ctx).Warn(LogMsgOpponentFallback, "player", key, "error", genErr)
		opp = duel.DefaultOpponent(level)
		out.Generated = false
	}

	err = m.withSession(ctx, name, func(ctx context.Context, s *Session) error {
		if s.arena != arena {
			return fmt.Errorf(ErrMsgArenaClosedFmt, domain.ErrNoArena)
		}
		if err := m.deps.Duel.Start(ctx, s.player, s.arena, opp); err != nil {
			return err
		}
		if !out.Generated {
			m.notify(ctx, s, &out.Notices, domain.NoticeWarning, NoticeOpponentFallback)
		}
		m.publish(ctx, event.New(event.ArenaStarted, s.key, event.ArenaStartedPayloadV1{
			Opponent:  opp,
			Generated: out.Generated,
		}))
		out.State = s.view(m.deps.Catalog.Items())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ArenaAction submits the player's choice for the current exchange
func (m *Manager) ArenaAction(ctx context.Context, name string, action domain.ArenaAction) (*ArenaOutcome, error) {
	switch action {
	case domain.ActionAttack, domain.ActionBlock, domain.ActionHeal:
	default:
		return nil, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrMsgUnknownAction, action)
	}

	out := &ArenaOutcome{}
	err := m.withSession(ctx, name, func(ctx context.Context, s *Session) error {
		if !s.arenaActive() {
			return domain.ErrNoArena
		}
		turn, err := m.deps.Duel.Act(ctx, s.player, s.arena, action)
		if err != nil {
			return err
		}
		out.Turn = turn

		if turn.GameOver {
			m.finishArena(ctx, s, &out.Notices, turn.Result, false)
			if turn.Reward != nil {
				m.publishGain(ctx, s, &out.Notices, turn.Reward.Experience)
			}
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

// LeaveArena closes the modal. A match in play is forfeited as a defeat.
func (m *Manager) LeaveArena(ctx context.Context, name string) (*ArenaOutcome, error) {
	out := &ArenaOutcome{}
	err := m.withSession(ctx, name, func(ctx context.Context, s *Session) error {
		if s.arena == nil {
			return domain.ErrNoArena
		}
		if err := m.forfeitArena(ctx, s, &out.Notices); err != nil {
			return err
		}
		out.State = s.view(m.deps.Catalog.Items())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// forfeitArena closes s.arena. A match past opponent generation ends as a
// defeat with the cooldown started. Must be called with s.mu held.
func (m *Manager) forfeitArena(ctx context.Context, s *Session, notices *[]domain.Notice) error {
	inPlay := s.arena.Phase != domain.ArenaMatchOver && s.arena.Phase != domain.ArenaAwaitingOpponent
	if err := m.deps.Duel.Forfeit(ctx, s.player, s.arena); err != nil {
		return err
	}
	if inPlay {
		m.finishArena(ctx, s, notices, domain.ResultDefeat, true)
		m.store(ctx, s)
	}
	s.arena = nil
	return nil
}

// finishArena must be called with s.mu held
func (m *Manager) finishArena(ctx context.Context, s *Session, notices *[]domain.Notice, result domain.ArenaResult, forfeited bool) {
	if err := m.deps.Cooldowns.StartCooldown(ctx, s.key, domain.ActionArena); err != nil {
		logger.FromContext(ctx).Warn(LogMsgCooldownFailed, "action", domain.ActionArena, "error", err)
	}
	m.publish(ctx, event.New(event.ArenaEnded, s.key, event.ArenaEndedPayloadV1{
		Result:    result,
		Turns:     s.arena.Turn,
		Forfeited: forfeited,
	}))

	switch {
	case forfeited:
		m.notify(ctx, s, notices, domain.NoticeWarning, NoticeArenaForfeit)
	case result == domain.ResultVictory:
		m.notify(ctx, s, notices, domain.NoticeSuccess, NoticeArenaVictory)
	default:
		m.notify(ctx, s, notices, domain.NoticeDanger, NoticeArenaDefeat)
	}
}
