package branch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/chat-tree-service/internal/config"
	"github.com/s21platform/chat-tree-service/internal/model"
)

type Loader struct {
	repository DBRepo
}

func New(repo DBRepo) *Loader {
	return &Loader{
		repository: repo,
	}
}

// Load gathers, per stream, the current leaf message and the ancestry of every message in
// deleteIDs. Both store queries run concurrently.
func (l *Loader) Load(ctx context.Context, streamIDs []string, deleteIDs []string) (map[string]model.PreBranchInfo, error) {
	result := make(map[string]model.PreBranchInfo, len(streamIDs))
	if len(streamIDs) == 0 {
		return result, nil
	}

	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("Load")

	var (
		leaves []model.StreamLeaf
		rows   []model.MessageTreeRow
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		leaves, err = l.repository.GetStreamLeaves(gCtx, streamIDs)
		if err != nil {
			return fmt.Errorf("failed to get stream leaves: %v", err)
		}
		return nil
	})

	if len(deleteIDs) > 0 {
		g.Go(func() error {
			var err error
			rows, err = l.repository.GetMessagesTreeInfo(gCtx, deleteIDs)
			if err != nil {
				return fmt.Errorf("failed to get messages tree info: %v", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, streamID := range streamIDs {
		result[streamID] = model.PreBranchInfo{
			TreePatchInfo: make(map[string]model.TreePatch),
		}
	}

	for _, leaf := range leaves {
		info, ok := result[leaf.StreamID]
		if !ok {
			continue
		}
		messageID := leaf.MessageID
		info.LastMessageID = &messageID
		result[leaf.StreamID] = info
	}

	for _, row := range rows {
		if row.StreamID == nil {
			logger.Warn(fmt.Sprintf("message %s has no stream, skipping tree info", row.ID))
			continue
		}

		info, ok := result[*row.StreamID]
		if !ok {
			info = model.PreBranchInfo{
				TreePatchInfo: make(map[string]model.TreePatch),
			}
		}
		info.TreePatchInfo[row.ID] = model.TreePatch{
			ParentID: row.ParentID,
			ChildIDs: []string(row.ChildIDs),
		}
		result[*row.StreamID] = info
	}

	return result, nil
}
