package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidPlayerName     = "Invalid player name"
)

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgInvalidInputError  = "Invalid request. Please check your inputs."

	// Session messages
	ErrMsgSessionNotFoundError = "No active session. Log in first."

	// Economy messages
	ErrMsgNotEnoughMoneyError   = "Not enough coins"
	ErrMsgItemNotFoundError     = "Item not found"
	ErrMsgAlreadyPurchasedError = "You already own that upgrade"
	ErrMsgAlreadyClaimedError   = "Today's reward was already claimed"
	ErrMsgOnCooldownError       = "Action is on cooldown. Try again later"
	ErrMsgExternalServiceError  = "The crystal is silent right now. Try again later."
	ErrMsgNotInCombatError      = "There is nothing to attack"
	ErrMsgAlreadyInCombatError  = "Finish your fight first"
	ErrMsgNoArenaError          = "No arena match is open"
	ErrMsgArenaBusyError        = "An arena match is already open"
	ErrMsgHealUsedError         = "Heal was already used this match"
	ErrMsgNotPlayerTurnError    = "Wait for your turn"
)

// Log messages
const (
	LogMsgDecodeFailedFmt = "Failed to decode %s request"
	LogMsgDecodedFmt      = "%s request decoded"
	LogMsgServiceErrorFmt = "%s failed"
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgOddLogFields    = "LogRequestFields called with odd number of arguments"
	LogMsgRequestDetails  = "Request details"
)

// URL parameters
const (
	URLParamName = "name"
)
