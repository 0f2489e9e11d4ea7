package database

// MinIdleConns keeps one connection warm for save writes between logins
const MinIdleConns = 1

// Error messages wrap the driver error
const (
	ErrMsgParseDSN       = "parse save store DSN"
	ErrMsgOpenPool       = "open save store pool"
	ErrMsgPingPool       = "save store unreachable"
	ErrMsgLoadMigrations = "load save schema migrations"
	ErrMsgMigrate        = "migrate save schema"
)

const (
	LogMsgPoolReady        = "Save store pool ready"
	LogMsgMigrationApplied = "Applied save schema migration"
)
