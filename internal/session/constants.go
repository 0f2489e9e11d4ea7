package session

import "time"

// Defaults
const (
	DefaultCacheSize = 1000
	DefaultTTL       = 30 * time.Minute
)

// Crystal questions
const (
	// OracleCost is debited before the seer is asked and refunded if it fails
	OracleCost = 10

	// MaxQuestionLength bounds a crystal question in runes
	MaxQuestionLength = 300
)

// Notice messages
const (
	NoticeWelcomeFmt        = "Welcome, %s! Step through a portal to begin."
	NoticeWelcomeBackFmt    = "Welcome back, %s."
	NoticeStaleSave         = "Your save was untouched for over 48 hours, so a new adventure begins."
	NoticeCorruptSave       = "Your save could not be read, so a new adventure begins."
	NoticeDailyAvailableFmt = "Daily reward ready: day %d streak."
	NoticePortalFmt         = "The portal grants %d coins and %d experience."
	NoticeCombatStartedFmt  = "A level %d %s emerges from the portal!"
	NoticeDodged            = "The lurker slips out of reach!"
	NoticeVictoryFmt        = "You defeated %s and earned %d coins."
	NoticeVictoryDoubled    = "Lucky charm! The reward was doubled."
	NoticeBurstFmt          = "The elemental bursts for %d damage!"
	NoticeDefeatFmt         = "You were defeated and lost %d coins."
	NoticeLevelUpFmt        = "Level up! You reached level %d and earned %d coins."
	NoticePurchasedFmt      = "Purchased %s."
	NoticeOpponentFallback  = "The arena herald is silent; the Shadow Duelist steps forward."
	NoticeArenaVictory      = "Victory in the arena!"
	NoticeArenaDefeat       = "You were bested in the arena."
	NoticeArenaForfeit      = "You left the arena. The match counts as a loss."
	NoticeDailyClaimedFmt   = "Day %d reward: %d coins."
	NoticeDailyBoost        = "Bonus: an XP boost for your next 20 gains!"
	NoticeOracleRefunded    = "The crystal is clouded. Your coins were returned."
	NoticeReset             = "Your progress was reset."
)

// Error messages
const (
	ErrMsgQuestionEmpty  = "question must not be empty"
	ErrMsgQuestionLong   = "question is too long"
	ErrMsgUnknownAction  = "unknown arena action"
	ErrMsgSessionFmt     = "player %q: %w"
	ErrMsgArenaClosedFmt = "arena closed while generating opponent: %w"
	ErrMsgOracleFundsFmt = "crystal question costs %d: %w"
	ErrMsgArenaCombatFmt = "cannot open the arena while fighting: %w"
	ErrMsgArenaPotionFmt = "health potions cannot be used during a match: %w"
)

// Log messages
const (
	LogMsgSessionCreated       = "Session created"
	LogMsgSessionEvicted       = "Session evicted"
	LogMsgSaveFailed           = "Failed to save player"
	LogMsgPublishFailed        = "Failed to publish event"
	LogMsgStaleTickIgnored     = "Ignoring tick for finished encounter"
	LogMsgCooldownFailed       = "Failed to start cooldown"
	LogMsgOpponentFallback     = "Opponent generation failed, using default"
	LogMsgFlavorFallback       = "Portal flavor failed, using static line"
	LogMsgOracleRefunded       = "Crystal question failed, refunded"
	LogMsgSessionsFlushed      = "Flushed all sessions"
	LogMsgCooldownResetError   = "Failed to reset cooldown"
	LogMsgArenaForfeitFailed   = "Failed to forfeit arena"
	LogMsgAnswerSettledOffline = "Session gone, settled crystal answer against the save"
)
