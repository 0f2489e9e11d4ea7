package cooldown

import (
	"time"

	"github.com/osse101/PortalQuest_Go/internal/domain"
)

// Config sets how long each gated action stays locked after it is used.
// A zero duration means the built-in default for that action.
type Config struct {
	DevMode bool // every check passes and nothing is recorded

	Arena  time.Duration
	Oracle time.Duration
}

// Duration returns the lock length for action. Actions without a gate of
// their own get DefaultCooldownDuration.
func (c Config) Duration(action string) time.Duration {
	configured, fallback := time.Duration(0), DefaultCooldownDuration
	switch action {
	case domain.ActionArena:
		configured, fallback = c.Arena, ArenaCooldownDuration
	case domain.ActionOracle:
		configured, fallback = c.Oracle, OracleCooldownDuration
	}
	if configured > 0 {
		return configured
	}
	return fallback
}
