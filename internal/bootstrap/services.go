package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-redis/redis/v8"

	"github.com/osse101/PortalQuest_Go/internal/config"
	"github.com/osse101/PortalQuest_Go/internal/cooldown"
	"github.com/osse101/PortalQuest_Go/internal/oracle"
)

// Cooldowns is the configured cooldown gate. Redis is set only for the redis backend.
type Cooldowns struct {
	Service cooldown.Service
	Redis   *redis.Client
}

// NewCooldowns builds the cooldown backend selected by COOLDOWN_BACKEND.
// st only needs a pool for the postgres backend.
func NewCooldowns(ctx context.Context, cfg *config.Config, st *Storage) (*Cooldowns, error) {
	cdCfg := cooldown.Config{
		DevMode: cfg.DevMode,
		Arena:   cfg.ArenaCooldown,
		Oracle:  cfg.OracleCooldown,
	}

	var cd Cooldowns
	switch cfg.CooldownBackend {
	case config.CooldownMemory:
		cd.Service = cooldown.NewMemoryService(cdCfg)
	case config.CooldownRedis:
		client, err := cooldown.NewRedisClient(ctx, cooldown.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, fmt.Errorf(ErrMsgRedisConnectFmt, err)
		}
		cd.Redis = client
		cd.Service = cooldown.NewRedisService(client, cdCfg)
	case config.CooldownPostgres:
		if st == nil || st.Pool == nil {
			return nil, errors.New(ErrMsgPostgresNeeded)
		}
		cd.Service = cooldown.NewPostgresService(st.Pool, cdCfg)
	default:
		return nil, fmt.Errorf(ErrMsgUnknownBackend, cfg.CooldownBackend)
	}

	slog.Info(LogMsgCooldownsReady, "backend", cfg.CooldownBackend, "dev_mode", cfg.DevMode)
	return &cd, nil
}

// Close releases the redis client, if any
func (c *Cooldowns) Close() error {
	if c.Redis == nil {
		return nil
	}
	return c.Redis.Close()
}

// NewOracle builds the text-generation service, falling back to canned lines without a key
func NewOracle(cfg *config.Config) oracle.Service {
	if !cfg.OracleEnabled() {
		slog.Info(LogMsgOracleDisabled)
		return oracle.NewService(oracle.NewDisabledGenerator())
	}
	slog.Info(LogMsgOracleEnabled, "model", cfg.OracleModel)
	return oracle.NewService(oracle.NewHTTPGenerator(oracle.HTTPConfig{
		BaseURL: cfg.OracleBaseURL,
		Model:   cfg.OracleModel,
		APIKey:  cfg.OracleAPIKey,
		Timeout: cfg.OracleTimeout,
	}))
}
