package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PORT", "LOG_LEVEL", "LOG_FORMAT", "ENVIRONMENT", "API_KEY",
	"STORAGE_DRIVER", "SQLITE_PATH", "DATABASE_URL", "DB_MAX_CONNS", "SAVE_KEY_PREFIX",
	"COOLDOWN_BACKEND", "REDIS_ADDR", "ARENA_COOLDOWN", "ORACLE_COOLDOWN", "DEV_MODE",
	"ORACLE_API_KEY", "ORACLE_BASE_URL", "ORACLE_MODEL", "ORACLE_TIMEOUT",
	"ENEMY_ATTACK_INTERVAL", "SESSION_CACHE_SIZE", "SESSION_TTL",
}

// clearEnvVars unsets every key Load reads for the duration of the test
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		if v, ok := os.LookupEnv(key); ok {
			require.NoError(t, os.Unsetenv(key))
			t.Cleanup(func() { _ = os.Setenv(key, v) })
		}
	}
}

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, StorageSQLite, cfg.StorageDriver)
		assert.Equal(t, CooldownMemory, cfg.CooldownBackend)
		assert.Equal(t, 3*time.Second, cfg.EnemyAttackInterval)
		assert.Equal(t, 60*time.Second, cfg.ArenaCooldown)
		assert.Equal(t, 30*time.Second, cfg.OracleCooldown)
		assert.Equal(t, "portalquest", cfg.SaveKeyPrefix)
		assert.False(t, cfg.OracleEnabled())
		assert.True(t, cfg.IsDevelopment())
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "3000")
		t.Setenv("STORAGE_DRIVER", "postgres")
		t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/pq")
		t.Setenv("COOLDOWN_BACKEND", "redis")
		t.Setenv("REDIS_ADDR", "cache:6379")
		t.Setenv("ORACLE_API_KEY", "secret")
		t.Setenv("ENEMY_ATTACK_INTERVAL", "500ms")
		t.Setenv("DEV_MODE", "true")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, StoragePostgres, cfg.StorageDriver)
		assert.Equal(t, "cache:6379", cfg.RedisAddr)
		assert.True(t, cfg.OracleEnabled())
		assert.Equal(t, 500*time.Millisecond, cfg.EnemyAttackInterval)
		assert.True(t, cfg.DevMode)
	})

	t.Run("rejects unparseable values", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "not-a-number")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse env")
	})
}

func validConfig() *Config {
	return &Config{
		Port:                8080,
		StorageDriver:       StorageMemory,
		DBMaxConns:          10,
		SaveKeyPrefix:       "pq",
		CooldownBackend:     CooldownMemory,
		EnemyAttackInterval: time.Second,
		OracleTimeout:       time.Second,
		SessionCacheSize:    10,
		SessionTTL:          time.Minute,
		SaveWorkers:         1,
		SaveQueueSize:       1,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"port out of range", func(c *Config) { c.Port = 70000 }, "PORT"},
		{"unknown storage", func(c *Config) { c.StorageDriver = "mongo" }, "STORAGE_DRIVER"},
		{"postgres without url", func(c *Config) { c.StorageDriver = StoragePostgres }, "DATABASE_URL"},
		{"sqlite without path", func(c *Config) { c.StorageDriver = StorageSQLite }, "SQLITE_PATH"},
		{"postgres cooldowns on sqlite", func(c *Config) { c.CooldownBackend = CooldownPostgres }, "COOLDOWN_BACKEND"},
		{"prefix with colon", func(c *Config) { c.SaveKeyPrefix = "a:b" }, "SAVE_KEY_PREFIX"},
		{"zero attack interval", func(c *Config) { c.EnemyAttackInterval = 0 }, "ENEMY_ATTACK_INTERVAL"},
		{"empty session cache", func(c *Config) { c.SessionCacheSize = 0 }, "SESSION_CACHE_SIZE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := validConfig()
	cfg.Port = 0
	cfg.SessionTTL = 0

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
	assert.Contains(t, err.Error(), "SESSION_TTL")
}
