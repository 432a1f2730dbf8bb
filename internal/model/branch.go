package model

import "github.com/lib/pq"

// PreBranchInfo is the per-stream metadata the tree engine needs to place and heal messages.
type PreBranchInfo struct {
	LastMessageID *string
	// TreePatchInfo holds ancestry only for messages slated for deletion.
	TreePatchInfo map[string]TreePatch
}

type TreePatch struct {
	ParentID *string
	ChildIDs []string
}

type StreamLeaf struct {
	StreamID  string `db:"stream_id"`
	MessageID string `db:"message_id"`
}

type MessageTreeRow struct {
	ID       string         `db:"id"`
	StreamID *string        `db:"stream_id"`
	ParentID *string        `db:"parent_id"`
	ChildIDs pq.StringArray `db:"child_ids"`
}
