//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/s21platform/chat-tree-service/internal/model"
)

type BatchService interface {
	ApplyBatch(ctx context.Context, streamID, senderID string, batch model.MessageBatch) (*model.BatchResult, error)
}

type FactsCollector interface {
	Collect(ctx context.Context, streamIDs, messageIDs []string) (*model.Facts, error)
}

type Validator interface {
	ValidateBatch(streamID string, batch *model.MessageBatch) error
	ValidateFactsRequest(req *model.FactsRequest) error
}
