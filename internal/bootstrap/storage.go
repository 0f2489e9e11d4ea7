package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PortalQuest_Go/internal/config"
	"github.com/osse101/PortalQuest_Go/internal/database"
	"github.com/osse101/PortalQuest_Go/internal/database/memory"
	"github.com/osse101/PortalQuest_Go/internal/database/postgres"
	"github.com/osse101/PortalQuest_Go/internal/database/sqlite"
	"github.com/osse101/PortalQuest_Go/internal/handler"
	"github.com/osse101/PortalQuest_Go/internal/repository"
)

// checkedStore is a save store that can also report its health
type checkedStore interface {
	repository.SaveStore
	handler.HealthChecker
}

// Storage is the opened save backend. Pool is set only for the postgres driver.
type Storage struct {
	Saves repository.SaveStore
	Ready handler.HealthChecker
	Pool  *pgxpool.Pool
}

// OpenStorage opens the save store selected by STORAGE_DRIVER, applying migrations
func OpenStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	var st Storage
	var store checkedStore

	switch cfg.StorageDriver {
	case config.StorageSQLite:
		s, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgOpenStorageFmt, cfg.StorageDriver, err)
		}
		store = s
	case config.StoragePostgres:
		pool, err := database.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, DBMaxIdleTime, DBMaxLifetime)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgOpenStorageFmt, cfg.StorageDriver, err)
		}
		if err := database.MigratePostgres(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf(ErrMsgOpenStorageFmt, cfg.StorageDriver, err)
		}
		st.Pool = pool
		store = postgres.NewSaveStore(pool)
	case config.StorageMemory:
		store = memory.New()
	default:
		return nil, fmt.Errorf(ErrMsgUnknownDriver, cfg.StorageDriver)
	}

	st.Saves = store
	st.Ready = store
	slog.Info(LogMsgStorageReady, "driver", cfg.StorageDriver)
	return &st, nil
}

// Close closes the store and, for postgres, the pool behind it
func (s *Storage) Close() error {
	err := s.Saves.Close()
	if s.Pool != nil {
		s.Pool.Close()
	}
	return err
}
