package bootstrap

import "time"

// Log file retention
const (
	LogFilePrefix  = "session_"
	LogFileSuffix  = ".log"
	LogFileKeep    = 9
	LogFileStamp   = "2006-01-02_15-04-05"
	DirPermission  = 0o755
	FilePermission = 0o644
)

// Postgres pool tuning
const (
	DBMaxIdleTime = 5 * time.Minute
	DBMaxLifetime = 30 * time.Minute
)

// Component names used in shutdown logs
const (
	ComponentServer    = "server"
	ComponentSessions  = "sessions"
	ComponentScheduler = "scheduler"
	ComponentWorkers   = "save workers"
	ComponentHub       = "sse hub"
	ComponentStorage   = "storage"
	ComponentRedis     = "redis"
)

// Log messages
const (
	LogMsgLoggingInitialized   = "Logging initialized"
	LogMsgStarting             = "Starting PortalQuest"
	LogMsgConfigLoaded         = "Configuration loaded"
	LogMsgLogCleanupFailed     = "Failed to delete old log file"
	LogMsgStorageReady         = "Save storage ready"
	LogMsgCooldownsReady       = "Cooldown backend ready"
	LogMsgOracleDisabled       = "No text-generation key configured, using fallback lines"
	LogMsgOracleEnabled        = "Text generation enabled"
	LogMsgEventSystemReady     = "Event system initialized"
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgComponentStopped     = "Component stopped"
	LogMsgComponentStopFailed  = "Component shutdown failed"
	LogMsgServerStopped        = "Server stopped"
)

// Error messages
const (
	ErrMsgCreateLogDir    = "failed to create logs directory: %w"
	ErrMsgOpenLogFile     = "failed to open log file: %w"
	ErrMsgOpenStorageFmt  = "open %s storage: %w"
	ErrMsgUnknownDriver   = "unknown storage driver %q"
	ErrMsgUnknownBackend  = "unknown cooldown backend %q"
	ErrMsgPostgresNeeded  = "postgres cooldowns need a postgres pool"
	ErrMsgRedisConnectFmt = "connect redis cooldowns: %w"
)
