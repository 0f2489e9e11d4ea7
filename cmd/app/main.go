package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/PortalQuest_Go/internal/bootstrap"
	"github.com/osse101/PortalQuest_Go/internal/combat"
	"github.com/osse101/PortalQuest_Go/internal/config"
	"github.com/osse101/PortalQuest_Go/internal/daily"
	"github.com/osse101/PortalQuest_Go/internal/duel"
	"github.com/osse101/PortalQuest_Go/internal/economy"
	"github.com/osse101/PortalQuest_Go/internal/portal"
	"github.com/osse101/PortalQuest_Go/internal/save"
	"github.com/osse101/PortalQuest_Go/internal/scheduler"
	"github.com/osse101/PortalQuest_Go/internal/server"
	"github.com/osse101/PortalQuest_Go/internal/session"
	"github.com/osse101/PortalQuest_Go/internal/sse"
	"github.com/osse101/PortalQuest_Go/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to setup logger: %v", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		slog.Error("PortalQuest exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := bootstrap.OpenStorage(ctx, cfg)
	if err != nil {
		return err
	}
	cooldowns, err := bootstrap.NewCooldowns(ctx, cfg, storage)
	if err != nil {
		_ = storage.Close()
		return err
	}

	catalog := economy.NewCatalog()
	sched := scheduler.New()
	pool := worker.NewPool(cfg.SaveWorkers, cfg.SaveQueueSize)
	pool.Start()

	hub := sse.NewHub()
	hub.Start()
	bus := bootstrap.InitializeEventSystem(hub)

	sessions := session.NewManager(session.Config{
		CacheSize:    cfg.SessionCacheSize,
		TTL:          cfg.SessionTTL,
		PortalFlavor: cfg.PortalFlavor,
	}, session.Deps{
		Saves:     save.NewService(storage.Saves, catalog, cfg.SaveKeyPrefix),
		Catalog:   catalog,
		Combat:    combat.NewService(sched, cfg.EnemyAttackInterval),
		Portal:    portal.NewService(),
		Duel:      duel.NewService(),
		Daily:     daily.NewService(),
		Oracle:    bootstrap.NewOracle(cfg),
		Cooldowns: cooldowns.Service,
		Bus:       bus,
		Pool:      pool,
	})

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, sessions, hub, storage.Ready)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		err = nil
	case err = <-serveErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:    srv,
		Sessions:  sessions,
		Scheduler: sched,
		Workers:   pool,
		Hub:       hub,
		Cooldowns: cooldowns,
		Storage:   storage,
	})
	return err
}
