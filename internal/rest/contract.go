//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vetcare/chat-service/internal/api"
	"github.com/vetcare/chat-service/internal/model"
	"github.com/vetcare/chat-service/internal/service"
)

type ChatService interface {
	RequestChat(ctx context.Context, callerID, vetID uuid.UUID) (uuid.UUID, error)
	AcceptRequest(ctx context.Context, callerID, threadID uuid.UUID) (*service.AcceptResult, error)
	DeclineRequest(ctx context.Context, callerID, threadID uuid.UUID) error
	StartAsVet(ctx context.Context, callerID, ownerID uuid.UUID, text string) (*service.StartResult, error)
	ListThreads(ctx context.Context, callerID uuid.UUID) (model.ThreadViewList, error)
	GetMessages(ctx context.Context, callerID, threadID uuid.UUID, limit int, before *time.Time) (model.MessageList, error)
	SendMessage(ctx context.Context, callerID, threadID uuid.UUID, text string) (*model.Message, error)
	IsParty(ctx context.Context, userID, threadID uuid.UUID) (bool, error)
}

type CetrifugeClient interface {
	Publish(ctx context.Context, channel string, data model.Message) error
}

type Validator interface {
	ValidateRequestChat(req *api.RequestChatRequest) error
	ValidateStartChat(req *api.StartChatRequest) error
	ValidateSendMessage(req *api.SendMessageRequest) error
}

type JWTGenerator interface {
	GenerateConnectToken(userID string) (string, int64, error)
	GenerateSubscribeToken(userID, threadID string) (string, int64, error)
}
