package daily

// BonusBoostUses is the length of the xp_boost granted by bonus tiers
const BonusBoostUses = 20

// Log messages
const (
	LogMsgDailyClaimed  = "Daily reward claimed"
	LogMsgClaimRejected = "Daily reward already claimed today"
)

// Error messages
const (
	ErrMsgAlreadyClaimedFmt = "claimed on %s: %w"
)
