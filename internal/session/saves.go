package session

import (
	"context"

	"github.com/osse101/PortalQuest_Go/internal/domain"
	"github.com/osse101/PortalQuest_Go/internal/logger"
	"github.com/osse101/PortalQuest_Go/internal/save"
	"github.com/osse101/PortalQuest_Go/internal/worker"
)

// snapshotStore writes one numbered snapshot of a session. Pool workers may
// pick snapshots up out of order; one at or below the last written number is dropped.
type snapshotStore struct {
	s     *Session
	saves save.Service
	seq   uint64
}

// Store implements worker.PlayerStore
func (w snapshotStore) Store(ctx context.Context, p *domain.Player) error {
	w.s.saveMu.Lock()
	defer w.s.saveMu.Unlock()
	if w.seq <= w.s.savedSeq {
		return nil
	}
	w.s.savedSeq = w.seq
	return w.saves.Store(ctx, p)
}

// snapshotJob numbers a copy of the player for saving. Must be called with s.mu held.
func (m *Manager) snapshotJob(s *Session) worker.SaveJob {
	s.saveSeq++
	return worker.SaveJob{
		Store:  snapshotStore{s: s, saves: m.deps.Saves, seq: s.saveSeq},
		Player: clonePlayer(s.player),
	}
}

// store queues a snapshot on the save pool, or writes it inline without one.
// Failures are logged, the session keeps running. Must be called with s.mu held.
func (m *Manager) store(ctx context.Context, s *Session) {
	job := m.snapshotJob(s)
	if m.deps.Pool != nil {
		m.deps.Pool.Enqueue(job)
		return
	}
	if err := job.Process(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgSaveFailed, "error", err)
	}
}
