package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/osse101/PortalQuest_Go/internal/domain"
	"github.com/osse101/PortalQuest_Go/internal/event"
	"github.com/osse101/PortalQuest_Go/internal/logger"
	"github.com/osse101/PortalQuest_Go/internal/oracle"
	"github.com/osse101/PortalQuest_Go/internal/progression"
)

// Ask pays for a crystal question. The cooldown gate holds the action while the
// generator runs, so one question per player is in flight. A failed generation
// refunds the cost and returns a fallback answer.
func (m *Manager) Ask(ctx context.Context, name, question string) (*AskOutcome, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgQuestionEmpty)
	}
	if utf8.RuneCountInString(question) > MaxQuestionLength {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgQuestionLong)
	}

	key := m.Key(name)
	out := &AskOutcome{}
	err := m.deps.Cooldowns.EnforceCooldown(ctx, key, domain.ActionOracle, func() error {
		if err := m.withSession(ctx, name, func(ctx context.Context, s *Session) error {
			if s.player.Currency < OracleCost {
				return fmt.Errorf(ErrMsgOracleFundsFmt, OracleCost, domain.ErrInsufficientFunds)
			}
			progression.AddCurrency(s.player, -OracleCost)
			m.store(ctx, s)
			return nil
		}); err != nil {
			return err
		}

		answer, err := m.deps.Oracle.Ask(ctx, question)
		if err == nil {
			out.Answer = answer
		} else {
			logger.FromContext(ctx).Warn(LogMsgOracleRefunded, "player", key, "error", err)
			out.Answer = oracle.FallbackAnswer(m.rnd)
			out.Refunded = true
		}

		return m.settleAnswer(ctx, name, out)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// settleAnswer refunds a failed question and reports the answer. When the
// session was evicted while the generator ran, it settles against the save instead.
func (m *Manager) settleAnswer(ctx context.Context, name string, out *AskOutcome) error {
	for {
		err := m.withSession(ctx, name, func(ctx context.Context, s *Session) error {
			if out.Refunded {
				progression.AddCurrency(s.player, OracleCost)
				m.store(ctx, s)
			}
			m.announceAnswer(ctx, s, out)
			return nil
		})
		if !errors.Is(err, domain.ErrSessionNotFound) {
			return err
		}
		settled, err := m.settleSaved(ctx, name, out)
		if settled {
			return err
		}
	}
}

// settleSaved applies the answer to the stored save. It reports false when a
// login raced in, so the caller settles against the new session instead.
// loadMu keeps a login from reading the save while the refund is written.
func (m *Manager) settleSaved(ctx context.Context, name string, out *AskOutcome) (bool, error) {
	key := m.Key(name)
	m.loadMu.Lock()
	defer m.loadMu.Unlock()

	if s, ok := m.sessions.Get(key); ok && !s.isClosed() {
		return false, nil
	}
	// Flushes an expired entry the sweep has not reached yet
	m.sessions.Remove(key)

	loaded, err := m.deps.Saves.Load(ctx, strings.TrimSpace(name))
	if err != nil {
		return true, err
	}
	s := &Session{key: key, player: loaded.Player, closed: true}
	if out.Refunded && !loaded.FreshStart {
		progression.AddCurrency(s.player, OracleCost)
		if err := m.deps.Saves.Store(ctx, s.player); err != nil {
			return true, err
		}
	}
	logger.FromContext(ctx).Info(LogMsgAnswerSettledOffline, "player", key, "refunded", out.Refunded)
	m.announceAnswer(ctx, s, out)
	return true, nil
}

func (m *Manager) announceAnswer(ctx context.Context, s *Session, out *AskOutcome) {
	if out.Refunded {
		m.notify(ctx, s, &out.Notices, domain.NoticeWarning, NoticeOracleRefunded)
	}
	m.publish(ctx, event.New(event.OracleAnswered, s.key, event.OracleAnsweredPayloadV1{Refunded: out.Refunded}))
	out.State = s.view(m.deps.Catalog.Items())
}
