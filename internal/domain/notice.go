package domain

import "time"

// NoticeVariant mirrors toast styles.
type NoticeVariant string

const (
	NoticeDefault     NoticeVariant = "default"
	NoticeDestructive NoticeVariant = "destructive"
)

// Notice is a user-visible confirmation delivered fire-and-forget.
type Notice struct {
	SessionID   string        `json:"session_id,omitempty"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Variant     NoticeVariant `json:"variant"`
	CreatedAt   time.Time     `json:"created_at"`
}
