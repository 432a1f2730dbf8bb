//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package service

import (
	"context"

	"github.com/s21platform/chat-tree-service/internal/model"
)

type DBRepo interface {
	LockStream(ctx context.Context, streamID string) error
	ApplyTreeOps(ctx context.Context, streamID string, ops *model.TreeOps, createOrder []string) error
	TouchStream(ctx context.Context, streamID string) error

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

type BranchLoader interface {
	Load(ctx context.Context, streamIDs []string, deleteIDs []string) (map[string]model.PreBranchInfo, error)
}

type FactsCollector interface {
	Collect(ctx context.Context, streamIDs, messageIDs []string) (*model.Facts, error)
}

type TreeCache interface {
	ApplySummary(ctx context.Context, streamID string, summary model.Summary, deleted []string) error
	Invalidate(ctx context.Context, streamID string) error
}

type Responder interface {
	Trigger(ctx context.Context, trigger model.ResponderTrigger) error
}
