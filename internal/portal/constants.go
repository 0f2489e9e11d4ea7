package portal

// Portal rewards
const (
	BaseMinReward = 1
	BaseMaxReward = 5
	BaseXP        = 10

	// CombatChance: a roll below this asks the caller to start an encounter
	CombatChance = 0.3
)

// Log messages
const (
	LogMsgPortalEntered = "Portal entered"
)
