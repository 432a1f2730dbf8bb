//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package facts

import (
	"context"

	"github.com/s21platform/chat-tree-service/internal/model"
)

type DBRepo interface {
	GetChatFacts(ctx context.Context, streamIDs, messageIDs []string) ([]model.ChatFactsRow, error)
}
