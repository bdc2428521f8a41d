package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vetcare/chat-service/internal/access"
	"github.com/vetcare/chat-service/internal/model"
)

// ListThreads returns every thread the caller takes part in, most recently active first.
func (s *Service) ListThreads(ctx context.Context, callerID uuid.UUID) (model.ThreadViewList, error) {
	party, err := s.ResolveParty(ctx, callerID)
	if err != nil {
		return nil, err
	}

	var previews model.ThreadPreviewList
	switch party.Role {
	case model.RoleVet:
		previews, err = s.repository.GetVetThreads(ctx, party.ProfileID)
	case model.RoleOwner:
		previews, err = s.repository.GetOwnerThreads(ctx, party.ProfileID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get threads: %w", err)
	}

	now := s.now()
	views := make(model.ThreadViewList, len(previews))
	for i := range previews {
		views[i] = access.View(&previews[i], now)
	}

	return views, nil
}
