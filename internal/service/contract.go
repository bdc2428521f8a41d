//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vetcare/chat-service/internal/model"
)

// DBRepo lookups return a nil result and nil error when the row does not exist.
type DBRepo interface {
	GetVetByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	GetOwnerByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	VetExists(ctx context.Context, vetID uuid.UUID) (bool, error)
	OwnerExists(ctx context.Context, ownerID uuid.UUID) (bool, error)

	UpsertOwnerRequest(ctx context.Context, vetID, ownerID uuid.UUID, now time.Time) (uuid.UUID, error)
	UpsertVetStart(ctx context.Context, vetID, ownerID uuid.UUID, now time.Time) (uuid.UUID, error)
	GetThread(ctx context.Context, threadID uuid.UUID) (*model.Thread, error)
	AppendWindow(ctx context.Context, threadID uuid.UUID, window model.Window) error
	DeclineThread(ctx context.Context, threadID uuid.UUID, now time.Time) error
	TouchLastMessage(ctx context.Context, threadID uuid.UUID, at time.Time) error
	GetVetThreads(ctx context.Context, vetID uuid.UUID) (model.ThreadPreviewList, error)
	GetOwnerThreads(ctx context.Context, ownerID uuid.UUID) (model.ThreadPreviewList, error)

	SaveMessage(ctx context.Context, message *model.Message) error
	GetThreadMessages(ctx context.Context, threadID uuid.UUID, before *time.Time, limit int) (model.MessageList, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}
