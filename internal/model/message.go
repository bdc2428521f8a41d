package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	TextMessageKind        = "text"
	WindowStartMessageKind = "window-start"
)

type MessageList []Message

type Message struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	ThreadID     uuid.UUID  `db:"thread_id" json:"thread_id"`
	AuthorRole   Role       `db:"author_role" json:"author_role"`
	AuthorUserID *uuid.UUID `db:"author_user_id" json:"author_user_id,omitempty"`
	Text         string     `db:"text" json:"text"`
	Kind         string     `db:"kind" json:"kind"`
	SentAt       time.Time  `db:"sent_at" json:"sent_at"`
}

// Reverse flips the list in place; the store reads newest-first.
func (l MessageList) Reverse() {
	for i, j := 0, len(l)-1; i < j; i, j = i+1, j-1 {
		l[i], l[j] = l[j], l[i]
	}
}
