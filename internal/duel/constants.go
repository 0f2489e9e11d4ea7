package duel

// Opponent
const (
	OpponentBaseHealth     = 80
	OpponentHealthPerLevel = 20

	// OpponentLevelBelow and OpponentLevelAbove bound a generated opponent's level around the player's
	OpponentLevelBelow = 2
	OpponentLevelAbove = 3

	MaxOpponentNameLength  = 40
	MaxOpponentTitleLength = 60

	DefaultOpponentName  = "Shadow Duelist"
	DefaultOpponentTitle = "Keeper of the Empty Arena"
)

// Telegraph weights: Attack x2, Power Attack x1, Block x1
const (
	WeightAttack      = 2
	WeightPowerAttack = 1
	WeightBlock       = 1
)

// Damage
const (
	PlayerBaseDamage     = 6
	PlayerDamagePerLevel = 2
	PlayerDamageRandMax  = 4

	OpponentBaseDamage     = 4
	OpponentDamagePerLevel = 2
	OpponentDamageRandMax  = 3
	OpponentDamageFactor   = 1.0
	PowerAttackMultiplier  = 1.5

	// BlockReduction is the fraction of incoming damage removed by Block
	BlockReduction = 0.5
)

// Heal
const (
	HealCost     = 15
	HealFraction = 0.3
)

// Rewards
const (
	VictoryXPPerLevel       = 20
	VictoryCurrencyPerLevel = 15
	DefeatHealth            = 1
)

// Log messages
const (
	LogMsgMatchStarted    = "Arena match started"
	LogMsgMatchEnded      = "Arena match ended"
	LogMsgHealRejected    = "Arena heal rejected"
	LogMsgMatchForfeited  = "Arena match forfeited"
	LogLinePlayerAttack   = "You strike %s for %d damage."
	LogLinePlayerBlock    = "You raise your guard."
	LogLinePlayerHeal     = "You drink a tonic and recover %d health."
	LogLineOpponentAttack = "%s attacks for %d damage."
	LogLineOpponentPower  = "%s unleashes a power attack for %d damage!"
	LogLineOpponentBlock  = "%s braces behind a guard."
	LogLineHealNoFunds    = "Not enough currency for a heal (%d needed)."
	LogLineVictory        = "%s falls. Victory!"
	LogLineDefeat         = "You collapse. %s wins the match."
	LogLineForfeit        = "You leave the arena. The match counts as a loss."
	LogLineTelegraph      = "%s prepares to %s."
)

// Error messages
const (
	ErrMsgActFmt       = "arena action %q: %w"
	ErrMsgHealFundsFmt = "heal costs %d, balance %d: %w"
)
