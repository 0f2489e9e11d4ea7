package save

// KeySeparator joins the save key prefix and the lowercased player name
const KeySeparator = ":"

// Reasons a login starts from a fresh player
const (
	FreshReasonNew     = "new"
	FreshReasonStale   = "stale"
	FreshReasonCorrupt = "corrupt"
)

// Error messages
const (
	ErrMsgEncodeFmt = "encode save: %w"
	ErrMsgDecodeFmt = "decode save: %w"
	ErrMsgLoadFmt   = "load save %q: %w"
	ErrMsgStoreFmt  = "store save %q: %w"
	ErrMsgDeleteFmt = "delete save %q: %w"
	ErrMsgNameEmpty = "name must not be empty"
	ErrMsgNameLong  = "name is too long"
)

// Log messages
const (
	LogMsgStaleSaveDiscarded   = "Discarded stale save"
	LogMsgCorruptSaveDiscarded = "Discarded unreadable save"
	LogMsgSaveLoaded           = "Save loaded"
	LogMsgSaveStored           = "Save stored"
)
