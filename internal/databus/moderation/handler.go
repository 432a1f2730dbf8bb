package moderation

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/chat-tree-service/internal/config"
	"github.com/s21platform/chat-tree-service/internal/model"
)

type BatchService interface {
	ApplyBatch(ctx context.Context, streamID, senderID string, batch model.MessageBatch) (*model.BatchResult, error)
}

type Handler struct {
	batchService BatchService
}

func New(batchService BatchService) *Handler {
	return &Handler{
		batchService: batchService,
	}
}

// Handler removes moderated messages from their stream as a delete-only batch.
func (h *Handler) Handler(ctx context.Context, in []byte) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("ModerationHandler")

	var event model.ModerationEvent
	if err := json.Unmarshal(in, &event); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal moderation event: %v", err))
		return fmt.Errorf("failed to unmarshal moderation event: %v", err)
	}

	if event.StreamID == "" || len(event.MessageIDs) == 0 {
		logger.Warn("moderation event without stream or messages, skipping")
		return nil
	}

	seen := make(map[string]struct{}, len(event.MessageIDs))
	ids := make([]string, 0, len(event.MessageIDs))
	for _, id := range event.MessageIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	result, err := h.batchService.ApplyBatch(ctx, event.StreamID, "", model.MessageBatch{Delete: ids})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to apply moderation deletions: %v", err))
		return fmt.Errorf("failed to apply moderation deletions: %v", err)
	}

	logger.Info(fmt.Sprintf("moderation removed %d messages from stream %s, %d re-parented",
		len(ids), event.StreamID, len(result.Summary.Update)))

	return nil
}
