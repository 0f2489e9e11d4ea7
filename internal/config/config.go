package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"portal-quest"`
	Version     string `env:"VERSION" envDefault:"dev"`
	APIKey      string `env:"API_KEY"` // optional; enables X-API-Key auth when set
	LogDir      string `env:"LOG_DIR"` // optional; also writes session log files here when set

	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	// Save storage
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"sqlite"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"data/portalquest.db"`
	DatabaseURL   string `env:"DATABASE_URL"`
	DBMaxConns    int    `env:"DB_MAX_CONNS" envDefault:"10"`
	SaveKeyPrefix string `env:"SAVE_KEY_PREFIX" envDefault:"portalquest"`

	// Cooldown gate
	CooldownBackend string        `env:"COOLDOWN_BACKEND" envDefault:"memory"`
	RedisAddr       string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB" envDefault:"0"`
	ArenaCooldown   time.Duration `env:"ARENA_COOLDOWN" envDefault:"60s"`
	OracleCooldown  time.Duration `env:"ORACLE_COOLDOWN" envDefault:"30s"`
	DevMode         bool          `env:"DEV_MODE" envDefault:"false"` // bypasses cooldowns

	// Text generation
	OracleAPIKey  string        `env:"ORACLE_API_KEY"`
	OracleBaseURL string        `env:"ORACLE_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta"`
	OracleModel   string        `env:"ORACLE_MODEL" envDefault:"gemini-2.0-flash"`
	OracleTimeout time.Duration `env:"ORACLE_TIMEOUT" envDefault:"15s"`
	PortalFlavor  bool          `env:"PORTAL_FLAVOR" envDefault:"true"`

	// Game loop
	EnemyAttackInterval time.Duration `env:"ENEMY_ATTACK_INTERVAL" envDefault:"3s"`
	SessionCacheSize    int           `env:"SESSION_CACHE_SIZE" envDefault:"1000"`
	SessionTTL          time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	SaveWorkers         int           `env:"SAVE_WORKERS" envDefault:"2"`
	SaveQueueSize       int           `env:"SAVE_QUEUE_SIZE" envDefault:"256"`
	ShutdownTimeout     time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgParseEnvFmt, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// OracleEnabled reports whether a text-generation key is configured
func (c *Config) OracleEnabled() bool {
	return c.OracleAPIKey != ""
}

// IsDevelopment reports whether the service runs in a dev environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}
