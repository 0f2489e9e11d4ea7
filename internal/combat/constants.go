package combat

import "time"

// Encounter generation
const (
	// EnemyBaseHealth and EnemyHealthPerLevel give max health = base + perLevel*level
	EnemyBaseHealth     = 20
	EnemyHealthPerLevel = 15

	// EnemyLevelSpread is the +/- offset rolled around the player's level
	EnemyLevelSpread = 1

	// DefaultAttackInterval is how often the enemy strikes while in combat
	DefaultAttackInterval = 3 * time.Second
)

// Player attack
const (
	PlayerBaseDamage     = 8
	PlayerDamagePerLevel = 2
	PlayerDamageRandMax  = 4

	// LurkerDodgeChance: a roll below this misses a lurker entirely
	LurkerDodgeChance = 0.25
)

// Victory rewards
const (
	RewardCurrencyPerLevel = 5
	RewardCurrencyRandMax  = 10
	RewardXPPerLevel       = 15
	RewardDoubleFactor     = 2
)

// Enemy attack
const (
	EnemyBaseDamage     = 3
	EnemyDamagePerLevel = 2

	// ElementalBurstChance: a roll below this makes an elemental hit harder
	ElementalBurstChance     = 0.2
	ElementalBurstMultiplier = 2.0

	MinEnemyDamage = 1

	// RespawnHealthFraction of max health is restored after a PvE defeat
	RespawnHealthFraction = 0.5

	// DefeatCurrencyFraction of currency is kept after a PvE defeat (floored)
	DefeatCurrencyFraction = 0.5
)

// Log messages
const (
	LogMsgEncounterStarted = "Encounter started"
	LogMsgEncounterEnded   = "Encounter ended"
	LogMsgEnemyDefeated    = "Enemy defeated"
	LogMsgPlayerDefeated   = "Player defeated in combat"
)

// Error messages
const (
	ErrMsgNoEncounterFmt = "attack: %w"
)
