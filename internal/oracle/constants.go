package oracle

// HTTP client defaults
const (
	DefaultBaseURL    = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel      = "gemini-2.0-flash"
	MaxErrorBodyBytes = 4096
	MaxResponseBytes  = 1 << 20
)

// Response paths (gjson syntax)
const (
	PathCandidateText = "candidates.0.content.parts.0.text"
	PathErrorMessage  = "error.message"
	PathBlockReason   = "promptFeedback.blockReason"
)

// Prompts
const (
	InstructionOpponent = "You generate rivals for a fantasy arena game. " +
		"Reply only with JSON containing name, title and level. Names are at most three words."
	InstructionSeer = "You are a cryptic crystal seer in a fantasy portal game. " +
		"Answer the traveler's question in at most two sentences, mysterious but kind."
	InstructionFlavor = "You narrate a fantasy portal game. " +
		"Describe what the player glimpses through a portal in one short sentence."

	ContentOpponentFmt = "Create an arena rival for %s, a level %d adventurer. The rival's level should be close to %d."
	ContentFlavorFmt   = "A level %d adventurer steps through a portal."

	MaxAnswerLength = 400
	MaxFlavorLength = 160
)

// Error messages
const (
	ErrMsgDisabled         = "text generation is not configured"
	ErrMsgMarshalFmt       = "marshal generate request: %w"
	ErrMsgBuildRequestFmt  = "build generate request: %w"
	ErrMsgRequestFailedFmt = "generate request failed: %w"
	ErrMsgStatusFmt        = "generate request status %d: %s"
	ErrMsgReadBodyFmt      = "read generate response: %w"
	ErrMsgEmptyText        = "generate response has no text"
	ErrMsgBlockedFmt       = "generate request blocked: %s"
	ErrMsgWrapFmt          = "%s: %w: %v"
	ErrMsgBadOpponent      = "opponent response is not usable"
)

// Log messages
const (
	LogMsgGenerateFailed = "Text generation failed"
	LogMsgGenerated      = "Text generated"
)
