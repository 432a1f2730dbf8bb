package model

import (
	"time"
)

const TextMessageType = "text"

type MessageList []Message

type Message struct {
	ID        string     `db:"id" json:"id"`
	StreamID  string     `db:"stream_id" json:"stream_id"`
	SenderID  string     `db:"sender_id" json:"sender_id"`
	Type      string     `db:"type" json:"type"`
	Content   string     `db:"content" json:"content"`
	ParentID  *string    `db:"parent_id" json:"parent_id,omitempty"`
	SentAt    time.Time  `db:"sent_at" json:"sent_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// MessageBatch is a set of unordered create/update/delete requests against one stream.
type MessageBatch struct {
	Create []CreateMessage `json:"create"`
	Update []UpdateMessage `json:"update"`
	Delete []string        `json:"delete"`
}

func (b MessageBatch) IsEmpty() bool {
	return len(b.Create) == 0 && len(b.Update) == 0 && len(b.Delete) == 0
}

type CreateMessage struct {
	ID       string  `json:"id"`
	ParentID *string `json:"parent_id,omitempty"`
	SenderID string  `json:"sender_id"`
	Type     string  `json:"type"`
	Content  string  `json:"content"`
}

// UpdateMessage never carries a parent: parent pointers move only through healing.
type UpdateMessage struct {
	ID      string  `json:"id"`
	Content *string `json:"content,omitempty"`
}

type BatchResult struct {
	Summary Summary `json:"summary"`
}
