package model

import "github.com/lib/pq"

type Facts struct {
	Chats    map[string]ChatFacts    `json:"chats"`
	Messages map[string]MessageFacts `json:"messages"`
}

type ChatFacts struct {
	StreamID    string       `json:"stream_id"`
	HasBot      bool         `json:"has_bot"`
	LastMessage *LeafMessage `json:"last_message,omitempty"`
}

type LeafMessage struct {
	ID       string  `json:"id"`
	ParentID *string `json:"parent_id,omitempty"`
	Content  string  `json:"content"`
	SenderID string  `json:"sender_id"`
}

type MessageFacts struct {
	StreamID string `json:"stream_id"`
	IsLast   bool   `json:"is_last"`
}

type ChatFactsRow struct {
	StreamID          string         `db:"stream_id"`
	HasBot            bool           `db:"has_bot"`
	LastMessageID     *string        `db:"last_message_id"`
	LastParentID      *string        `db:"last_parent_id"`
	LastContent       *string        `db:"last_content"`
	LastSenderID      *string        `db:"last_sender_id"`
	MatchedMessageIDs pq.StringArray `db:"matched_message_ids"`
}

// ResponderTrigger is published when a bot participant may need to react to new messages.
type ResponderTrigger struct {
	StreamID    string      `json:"stream_id"`
	LastMessage LeafMessage `json:"last_message"`
	CreatedIDs  []string    `json:"created_ids"`
}

type ModerationEvent struct {
	StreamID   string   `json:"stream_id"`
	MessageIDs []string `json:"message_ids"`
}
