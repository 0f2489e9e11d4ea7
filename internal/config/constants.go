package config

// Storage drivers
const (
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Cooldown backends
const (
	CooldownMemory   = "memory"
	CooldownRedis    = "redis"
	CooldownPostgres = "postgres"
)

// Bounds checked by Validate
const (
	MinPort          = 1
	MaxPort          = 65535
	MaxDBConns       = 500
	MaxSessionCache  = 1_000_000
	MaxSaveKeyPrefix = 64
)

// Error messages
const (
	ErrMsgParseEnvFmt      = "parse env: %w"
	ErrMsgInvalidFmt       = "invalid %s: %s"
	ErrMsgValidationFailed = "config validation failed: %s"
)
