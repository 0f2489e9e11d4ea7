package domain

import "time"

// Player baseline values
const (
	// BaseMaxHealth is the max health of a level 1 player
	BaseMaxHealth = 100

	// HealthPerLevel is added to max health for every level above 1
	HealthPerLevel = 10

	// BaseXPToNextLevel is the experience needed to leave level 1
	BaseXPToNextLevel = 100

	// BaseXPMultiplier is the experience multiplier before upgrades
	BaseXPMultiplier = 1.0

	// MaxNameLength bounds the player name
	MaxNameLength = 32
)

// Buff keys
const (
	// BuffXPBoost doubles experience gains while it has uses left
	BuffXPBoost = "xp_boost"

	// BuffXPBoostLabel is shown next to the active buff
	BuffXPBoostLabel = "XP Boost x2"
)

// Save lifecycle
const (
	// StaleSaveAge is how long a save may sit untouched before it is discarded
	StaleSaveAge = 48 * time.Hour

	// DateLayout is the calendar-day format used for login tracking
	DateLayout = "2006-01-02"
)

// Cooldown action names
const (
	ActionArena  = "arena"
	ActionOracle = "oracle"
)
