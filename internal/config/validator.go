package config

import (
	"fmt"
	"strings"
)

// Validate checks ranges and cross-field requirements, reporting every problem at once
func (c *Config) Validate() error {
	var problems []string
	add := func(field, reason string) {
		problems = append(problems, fmt.Sprintf(ErrMsgInvalidFmt, field, reason))
	}

	if c.Port < MinPort || c.Port > MaxPort {
		add("PORT", fmt.Sprintf("%d out of range", c.Port))
	}

	switch c.StorageDriver {
	case StorageSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			add("SQLITE_PATH", "required for sqlite storage")
		}
	case StoragePostgres:
		if c.DatabaseURL == "" {
			add("DATABASE_URL", "required for postgres storage")
		}
	case StorageMemory:
	default:
		add("STORAGE_DRIVER", fmt.Sprintf("unknown driver %q", c.StorageDriver))
	}
	if c.DBMaxConns < 1 || c.DBMaxConns > MaxDBConns {
		add("DB_MAX_CONNS", fmt.Sprintf("%d out of range", c.DBMaxConns))
	}

	switch c.CooldownBackend {
	case CooldownMemory:
	case CooldownRedis:
		if c.RedisAddr == "" {
			add("REDIS_ADDR", "required for redis cooldowns")
		}
	case CooldownPostgres:
		if c.StorageDriver != StoragePostgres {
			add("COOLDOWN_BACKEND", "postgres cooldowns need STORAGE_DRIVER=postgres")
		}
	default:
		add("COOLDOWN_BACKEND", fmt.Sprintf("unknown backend %q", c.CooldownBackend))
	}

	if c.SaveKeyPrefix == "" || len(c.SaveKeyPrefix) > MaxSaveKeyPrefix || strings.Contains(c.SaveKeyPrefix, ":") {
		add("SAVE_KEY_PREFIX", "must be 1-64 characters without ':'")
	}
	if c.EnemyAttackInterval <= 0 {
		add("ENEMY_ATTACK_INTERVAL", "must be positive")
	}
	if c.OracleTimeout <= 0 {
		add("ORACLE_TIMEOUT", "must be positive")
	}
	if c.ArenaCooldown < 0 || c.OracleCooldown < 0 {
		add("COOLDOWN", "durations must not be negative")
	}
	if c.SessionCacheSize < 1 || c.SessionCacheSize > MaxSessionCache {
		add("SESSION_CACHE_SIZE", fmt.Sprintf("%d out of range", c.SessionCacheSize))
	}
	if c.SessionTTL <= 0 {
		add("SESSION_TTL", "must be positive")
	}
	if c.SaveWorkers < 1 || c.SaveQueueSize < 1 {
		add("SAVE_WORKERS", "workers and queue size must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf(ErrMsgValidationFailed, strings.Join(problems, "; "))
	}
	return nil
}
