//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package branch

import (
	"context"

	"github.com/s21platform/chat-tree-service/internal/model"
)

type DBRepo interface {
	GetStreamLeaves(ctx context.Context, streamIDs []string) ([]model.StreamLeaf, error)
	GetMessagesTreeInfo(ctx context.Context, messageIDs []string) ([]model.MessageTreeRow, error)
}
