package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/PortalQuest_Go/internal/scheduler"
	"github.com/osse101/PortalQuest_Go/internal/server"
	"github.com/osse101/PortalQuest_Go/internal/session"
	"github.com/osse101/PortalQuest_Go/internal/sse"
	"github.com/osse101/PortalQuest_Go/internal/worker"
)

// ShutdownComponents holds everything that needs an orderly stop.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server    *server.Server
	Sessions  *session.Manager
	Scheduler *scheduler.Scheduler
	Workers   *worker.Pool
	Hub       *sse.Hub
	Cooldowns *Cooldowns
	Storage   *Storage
}

// GracefulShutdown stops the application in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Sessions (stop encounters, write final saves)
// 3. Scheduler and save workers (drain queued snapshots)
// 4. SSE hub, cooldown client and storage
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Sessions != nil {
		c.Sessions.Close(ctx)
		slog.Info(LogMsgComponentStopped, "component", ComponentSessions)
	}
	if c.Scheduler != nil {
		c.Scheduler.Stop()
		slog.Info(LogMsgComponentStopped, "component", ComponentScheduler)
	}
	if c.Workers != nil {
		c.Workers.Stop()
		slog.Info(LogMsgComponentStopped, "component", ComponentWorkers)
	}
	if c.Hub != nil {
		c.Hub.Stop()
		slog.Info(LogMsgComponentStopped, "component", ComponentHub)
	}

	if c.Cooldowns != nil && c.Cooldowns.Redis != nil {
		closeComponent(ComponentRedis, c.Cooldowns)
	}
	if c.Storage != nil {
		closeComponent(ComponentStorage, c.Storage)
	}

	slog.Info(LogMsgServerStopped)
}

type closer interface {
	Close() error
}

func closeComponent(name string, c closer) {
	if err := c.Close(); err != nil {
		slog.Error(LogMsgComponentStopFailed, "component", name, "error", err)
		return
	}
	slog.Info(LogMsgComponentStopped, "component", name)
}
