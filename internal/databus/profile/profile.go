package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/vetcare/chat-service/internal/config"
	"github.com/vetcare/chat-service/internal/model"
)

type Handler struct {
	dbR DBRepo
	now func() time.Time
}

func New(dbR DBRepo) *Handler {
	return &Handler{dbR: dbR, now: time.Now}
}

// Handler mirrors a vet or owner profile. Undecodable events are logged and skipped so they do not block the partition.
func (h *Handler) Handler(ctx context.Context, in []byte) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("ProfileHandler")

	var event model.ProfileEvent
	if err := json.Unmarshal(in, &event); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal profile event: %v", err))
		return nil
	}

	if event.ProfileID == uuid.Nil || event.UserID == uuid.Nil {
		logger.Error(fmt.Sprintf("profile event without ids, role %q", event.Role))
		return nil
	}

	profile := model.Profile{
		ID:        event.ProfileID,
		UserID:    event.UserID,
		Name:      event.Name,
		UpdatedAt: h.now().UTC(),
	}

	var err error
	switch event.Role {
	case model.RoleVet:
		err = h.dbR.UpsertVet(ctx, profile)
	case model.RoleOwner:
		err = h.dbR.UpsertOwner(ctx, profile)
	default:
		logger.Error(fmt.Sprintf("skip profile %s: %v %q", event.ProfileID, model.ErrUnknownRole, event.Role))
		return nil
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to upsert %s profile %s: %v", event.Role, event.ProfileID, err))
		return fmt.Errorf("failed to upsert %s profile: %v", event.Role, err)
	}

	return nil
}
