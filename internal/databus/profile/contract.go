//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package profile

import (
	"context"

	"github.com/vetcare/chat-service/internal/model"
)

type DBRepo interface {
	UpsertVet(ctx context.Context, profile model.Profile) error
	UpsertOwner(ctx context.Context, profile model.Profile) error
}
