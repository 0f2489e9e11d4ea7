package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgItemNotFound      = "item not found"
	ErrMsgAlreadyPurchased  = "upgrade already purchased"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Collaborator errors
	ErrMsgExternalService = "external service failure"

	// Save errors
	ErrMsgStaleSession    = "save is stale"
	ErrMsgSaveNotFound    = "save not found"
	ErrMsgSessionNotFound = "session not found"

	// Cooldown errors
	ErrMsgOnCooldown = "action on cooldown"

	// Combat errors
	ErrMsgNotInCombat     = "not in combat"
	ErrMsgAlreadyInCombat = "already in combat"

	// Arena errors
	ErrMsgNoArena       = "no arena match open"
	ErrMsgArenaBusy     = "arena match already open"
	ErrMsgHealUsed      = "heal already used this match"
	ErrMsgNotPlayerTurn = "not the player's turn"

	// Daily reward errors
	ErrMsgAlreadyClaimed = "daily reward already claimed"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrItemNotFound      = errors.New(ErrMsgItemNotFound)
	ErrAlreadyPurchased  = errors.New(ErrMsgAlreadyPurchased)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	ErrExternalService = errors.New(ErrMsgExternalService)

	ErrStaleSession    = errors.New(ErrMsgStaleSession)
	ErrSaveNotFound    = errors.New(ErrMsgSaveNotFound)
	ErrSessionNotFound = errors.New(ErrMsgSessionNotFound)

	ErrOnCooldown = errors.New(ErrMsgOnCooldown)

	ErrNotInCombat     = errors.New(ErrMsgNotInCombat)
	ErrAlreadyInCombat = errors.New(ErrMsgAlreadyInCombat)

	ErrNoArena       = errors.New(ErrMsgNoArena)
	ErrArenaBusy     = errors.New(ErrMsgArenaBusy)
	ErrHealUsed      = errors.New(ErrMsgHealUsed)
	ErrNotPlayerTurn = errors.New(ErrMsgNotPlayerTurn)

	ErrAlreadyClaimed = errors.New(ErrMsgAlreadyClaimed)
)
