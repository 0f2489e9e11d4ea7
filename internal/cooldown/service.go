package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/PortalQuest_Go/internal/domain"
)

// Service manages per-player action cooldowns
type Service interface {
	// CheckCooldown checks if a player's action is on cooldown
	// Returns: (onCooldown bool, remaining time.Duration, error)
	CheckCooldown(ctx context.Context, playerKey, action string) (bool, time.Duration, error)

	// EnforceCooldown checks the cooldown, runs fn and starts the cooldown only if fn succeeds.
	// While fn runs the action is held, so a second caller is rejected (single in flight).
	EnforceCooldown(ctx context.Context, playerKey, action string, fn func() error) error

	// StartCooldown marks the action as used now
	StartCooldown(ctx context.Context, playerKey, action string) error

	// ResetCooldown manually resets a cooldown (admin/testing)
	ResetCooldown(ctx context.Context, playerKey, action string) error

	// GetLastUsed returns when action was last performed (for UI display)
	GetLastUsed(ctx context.Context, playerKey, action string) (*time.Time, error)
}

// ErrOnCooldown is returned when action is still on cooldown
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	minutes := int(e.Remaining.Minutes())
	seconds := int(e.Remaining.Seconds()) % SecondsPerMinute

	if minutes > 0 {
		return fmt.Sprintf(ErrFmtCooldownWithMinutes, e.Action, minutes, seconds)
	}
	return fmt.Sprintf(ErrFmtCooldownSecondsOnly, e.Action, seconds)
}

// Is allows errors.Is() to match both ErrOnCooldown and domain.ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	if target == domain.ErrOnCooldown {
		return true
	}
	_, ok := target.(ErrOnCooldown)
	return ok
}

// remaining returns how much of duration is left since lastUsed
func remaining(lastUsed *time.Time, duration time.Duration, now time.Time) (bool, time.Duration) {
	if lastUsed == nil {
		return false, 0
	}
	elapsed := now.Sub(*lastUsed)
	if elapsed < duration {
		return true, duration - elapsed
	}
	return false, 0
}
