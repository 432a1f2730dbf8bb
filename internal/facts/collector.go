package facts

import (
	"context"
	"fmt"

	"github.com/s21platform/chat-tree-service/internal/model"
)

type Collector struct {
	repository DBRepo
}

func New(repo DBRepo) *Collector {
	return &Collector{
		repository: repo,
	}
}

// Collect reports, for every stream in streamIDs or holding one of messageIDs, whether a bot
// takes part and what its current leaf message is. It issues a single store query.
func (c *Collector) Collect(ctx context.Context, streamIDs, messageIDs []string) (*model.Facts, error) {
	result := &model.Facts{
		Chats:    make(map[string]model.ChatFacts),
		Messages: make(map[string]model.MessageFacts),
	}
	if len(streamIDs) == 0 && len(messageIDs) == 0 {
		return result, nil
	}

	rows, err := c.repository.GetChatFacts(ctx, streamIDs, messageIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat facts: %v", err)
	}

	for _, row := range rows {
		chat := model.ChatFacts{
			StreamID: row.StreamID,
			HasBot:   row.HasBot,
		}
		if row.LastMessageID != nil {
			chat.LastMessage = &model.LeafMessage{
				ID:       *row.LastMessageID,
				ParentID: row.LastParentID,
				Content:  deref(row.LastContent),
				SenderID: deref(row.LastSenderID),
			}
		}
		result.Chats[row.StreamID] = chat

		for _, messageID := range row.MatchedMessageIDs {
			result.Messages[messageID] = model.MessageFacts{
				StreamID: row.StreamID,
				IsLast:   chat.LastMessage != nil && chat.LastMessage.ID == messageID,
			}
		}
	}

	return result, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
