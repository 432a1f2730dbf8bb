package service

import (
	"context"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/s21platform/chat-tree-service/internal/config"
	"github.com/s21platform/chat-tree-service/internal/model"
	"github.com/s21platform/chat-tree-service/internal/pkg/tx"
	"github.com/s21platform/chat-tree-service/internal/tree"
)

type Service struct {
	repository DBRepo
	loader     BranchLoader
	collector  FactsCollector
	cache      TreeCache
	responder  Responder
	treeOpts   []tree.Option
}

func New(
	repo DBRepo,
	loader BranchLoader,
	collector FactsCollector,
	cache TreeCache,
	responder Responder,
	cfg *config.Config,
) *Service {
	var treeOpts []tree.Option
	if cfg.Batch.StrictTree {
		treeOpts = append(treeOpts, tree.WithStrictParents())
	}

	return &Service{
		repository: repo,
		loader:     loader,
		collector:  collector,
		cache:      cache,
		responder:  responder,
		treeOpts:   treeOpts,
	}
}

// ApplyBatch writes one stream's batch in a single transaction and returns the resulting
// parent assignments. Cache sync and responder triggers run after commit and never fail the batch.
func (s *Service) ApplyBatch(ctx context.Context, streamID, senderID string, batch model.MessageBatch) (*model.BatchResult, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("ApplyBatch")

	creates := make([]model.CreateMessage, len(batch.Create))
	for i, c := range batch.Create {
		c.SenderID = senderID
		if c.Type == "" {
			c.Type = model.TextMessageType
		}
		creates[i] = c
	}

	// Malformed batches never depend on stored branch info, so they are rejected before
	// the stream is touched.
	out, err := tree.BuildOperations(model.TreeOpsInput{
		Create: creates,
		Update: batch.Update,
		Delete: batch.Delete,
	}, s.treeOpts...)
	if err != nil {
		increment(ctx, "batch.rejected")
		return nil, err
	}
	if out.Ops == nil {
		return &model.BatchResult{Summary: out.Summary}, nil
	}

	err = tx.TxExecute(ctx, func(ctx context.Context) error {
		if err := s.repository.LockStream(ctx, streamID); err != nil {
			return err
		}

		infos, err := s.loader.Load(ctx, []string{streamID}, batch.Delete)
		if err != nil {
			return fmt.Errorf("failed to load branch info: %w", err)
		}

		out, err = tree.BuildOperations(model.TreeOpsInput{
			BranchInfo: infos[streamID],
			Create:     creates,
			Update:     batch.Update,
			Delete:     batch.Delete,
		}, s.treeOpts...)
		if err != nil {
			return err
		}

		createOrder := make([]string, len(out.Summary.Create))
		for i, change := range out.Summary.Create {
			createOrder[i] = change.ID
		}

		if err := s.repository.ApplyTreeOps(ctx, streamID, out.Ops, createOrder); err != nil {
			return err
		}

		return s.repository.TouchStream(ctx, streamID)
	})
	if err != nil {
		increment(ctx, "batch.error")
		return nil, err
	}

	increment(ctx, "batch.applied")
	count(ctx, "batch.created", len(out.Summary.Create))
	count(ctx, "batch.reparented", len(out.Summary.Update))

	if err := s.cache.ApplySummary(ctx, streamID, out.Summary, batch.Delete); err != nil {
		logger.Error(fmt.Sprintf("failed to sync tree cache: %v", err))
		if err := s.cache.Invalidate(ctx, streamID); err != nil {
			logger.Error(fmt.Sprintf("failed to invalidate tree cache: %v", err))
		}
	}

	if len(creates) > 0 {
		createdIDs := make([]string, len(creates))
		for i, c := range creates {
			createdIDs[i] = c.ID
		}
		s.triggerResponder(ctx, logger, streamID, createdIDs)
	}

	return &model.BatchResult{Summary: out.Summary}, nil
}

func (s *Service) triggerResponder(ctx context.Context, logger logger_lib.LoggerInterface, streamID string, createdIDs []string) {
	facts, err := s.collector.Collect(ctx, []string{streamID}, createdIDs)
	if err != nil {
		increment(ctx, "responder.error")
		logger.Error(fmt.Sprintf("failed to collect chat facts: %v", err))
		return
	}

	chat, ok := facts.Chats[streamID]
	if !ok || !chat.HasBot || chat.LastMessage == nil {
		return
	}

	err = s.responder.Trigger(ctx, model.ResponderTrigger{
		StreamID:    streamID,
		LastMessage: *chat.LastMessage,
		CreatedIDs:  createdIDs,
	})
	if err != nil {
		increment(ctx, "responder.error")
		logger.Error(fmt.Sprintf("failed to trigger responder: %v", err))
		return
	}
	increment(ctx, "responder.triggered")
}

func increment(ctx context.Context, name string) {
	if metrics := pkg.FromContext(ctx, config.KeyMetrics); metrics != nil {
		metrics.Increment(name)
	}
}

func count(ctx context.Context, name string, value int) {
	if metrics := pkg.FromContext(ctx, config.KeyMetrics); metrics != nil {
		metrics.Count(name, int64(value))
	}
}
