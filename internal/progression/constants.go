package progression

// Leveling curve
const (
	// XPGrowthFactor multiplies the level threshold after every level-up (floored)
	XPGrowthFactor = 1.5

	// LevelUpCurrencyPerLevel is granted per new level reached: currency += level * this
	LevelUpCurrencyPerLevel = 10

	// XPBoostFactor applies while the xp_boost buff has uses left
	XPBoostFactor = 2.0

	// MaxLevelUpsPerGain bounds the level-up cascade for a single reward
	MaxLevelUpsPerGain = 1000
)
