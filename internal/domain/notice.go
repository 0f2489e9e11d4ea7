package domain

// NoticeKind classifies a player-facing notice
type NoticeKind string

const (
	NoticeInfo    NoticeKind = "info"
	NoticeSuccess NoticeKind = "success"
	NoticeWarning NoticeKind = "warning"
	NoticeDanger  NoticeKind = "danger"
)

// Notice is a message the front-end shows as a toast
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}
