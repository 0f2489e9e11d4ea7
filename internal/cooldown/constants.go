package cooldown

import "time"

// =============================================================================
// Duration Constants
// =============================================================================

const (
	// DefaultCooldownDuration is the fallback cooldown when no specific duration is configured
	DefaultCooldownDuration = 30 * time.Second

	// ArenaCooldownDuration gates opening a new arena match after one ends
	ArenaCooldownDuration = 60 * time.Second

	// OracleCooldownDuration gates paid crystal questions
	OracleCooldownDuration = 30 * time.Second
)

// =============================================================================
// Hash Constants
// =============================================================================

const (
	// HashSeparator joins player key and action for lock keys
	HashSeparator = ":"

	// HashMaskPositiveInt64 keeps advisory lock keys positive for PostgreSQL
	HashMaskPositiveInt64 = 0x7FFFFFFFFFFFFFFF
)

// =============================================================================
// Redis Key Constants
// =============================================================================

const (
	RedisKeyPrefix     = "cooldown"
	RedisLockKeyPrefix = "cooldown-lock"
)

// =============================================================================
// SQL Query Constants
// =============================================================================

const (
	// SQLAdvisoryLock acquires a PostgreSQL advisory transaction lock
	SQLAdvisoryLock = "SELECT pg_advisory_xact_lock($1)"

	// SQLSelectLastUsed retrieves the last used timestamp for a player action
	SQLSelectLastUsed = `
		SELECT last_used_at
		FROM player_cooldowns
		WHERE player_key = $1 AND action_name = $2
	`

	// SQLDeleteCooldown removes a cooldown record for a player action
	SQLDeleteCooldown = `DELETE FROM player_cooldowns WHERE player_key = $1 AND action_name = $2`

	// SQLUpsertCooldown inserts or updates a cooldown timestamp
	SQLUpsertCooldown = `
		INSERT INTO player_cooldowns (player_key, action_name, last_used_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (player_key, action_name) DO UPDATE
		SET last_used_at = EXCLUDED.last_used_at
	`
)

// =============================================================================
// Error Message Constants
// =============================================================================

const (
	ErrMsgCheckCooldownFailed     = "failed to check cooldown: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgAcquireLockFailed       = "failed to acquire advisory lock: %w"
	ErrMsgGetCooldownTxFailed     = "failed to get cooldown within transaction: %w"
	ErrMsgUpdateCooldownFailed    = "failed to update cooldown: %w"
	ErrMsgCommitTransactionFailed = "failed to commit cooldown transaction: %w"
	ErrMsgResetCooldownFailed     = "failed to reset cooldown: %w"
	ErrMsgGetLastUsedFailed       = "failed to get last used: %w"
	ErrMsgRedisPingFailed         = "failed to connect to redis: %w"
	ErrMsgParseLastUsedFailed     = "failed to parse last used value %q: %w"
)

// =============================================================================
// Log Message Constants
// =============================================================================

const (
	LogMsgDevModeBypass         = "DEV_MODE: Bypassing cooldown enforcement"
	LogMsgRaceConditionDetected = "Race condition detected - concurrent request on cooldown"
	LogMsgCooldownEnforced      = "Cooldown enforced successfully"
	LogMsgCooldownStarted       = "Cooldown started"
	LogMsgLockReleaseFailed     = "Failed to release cooldown lock"
)

// =============================================================================
// Error Message Format Strings (for ErrOnCooldown.Error())
// =============================================================================

const (
	ErrFmtCooldownWithMinutes = "You can %s again in %dm %ds"
	ErrFmtCooldownSecondsOnly = "You can %s again in %ds"
)

// =============================================================================
// Time Conversion Constants
// =============================================================================

const (
	SecondsPerMinute = 60
)
