package worker

import (
	"context"

	"github.com/osse101/PortalQuest_Go/internal/domain"
	"github.com/osse101/PortalQuest_Go/internal/logger"
)

// PlayerStore writes a player save
type PlayerStore interface {
	Store(ctx context.Context, p *domain.Player) error
}

// SaveJob flushes a player save off the request path
type SaveJob struct {
	Store  PlayerStore
	Player *domain.Player
}

// Process writes the save
func (j SaveJob) Process(ctx context.Context) error {
	if err := j.Store.Store(ctx, j.Player); err != nil {
		return err
	}
	logger.FromContext(ctx).Debug(LogMsgSaveFlushed, "player", j.Player.Name)
	return nil
}
