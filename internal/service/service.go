package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vetcare/chat-service/internal/model"
)

const (
	DefaultWindowDuration = 72 * time.Hour

	DefaultMessagesLimit = 50
	MaxMessagesLimit     = 200
)

type Service struct {
	repository     DBRepo
	windowDuration time.Duration
	now            func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithWindowDuration(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.windowDuration = d
		}
	}
}

func New(repo DBRepo, opts ...Option) *Service {
	s := &Service{
		repository:     repo,
		windowDuration: DefaultWindowDuration,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ResolveParty maps an authenticated user to their vet profile, or failing that, their owner profile.
func (s *Service) ResolveParty(ctx context.Context, userID uuid.UUID) (model.Party, error) {
	vet, err := s.repository.GetVetByUserID(ctx, userID)
	if err != nil {
		return model.Party{}, fmt.Errorf("failed to look up vet profile: %w", err)
	}
	if vet != nil {
		return model.Party{Role: model.RoleVet, ProfileID: vet.ID, UserID: userID, Name: vet.Name}, nil
	}

	owner, err := s.repository.GetOwnerByUserID(ctx, userID)
	if err != nil {
		return model.Party{}, fmt.Errorf("failed to look up owner profile: %w", err)
	}
	if owner != nil {
		return model.Party{Role: model.RoleOwner, ProfileID: owner.ID, UserID: userID, Name: owner.Name}, nil
	}

	return model.Party{}, fmt.Errorf("%w: user %s is neither a vet nor an owner", ErrForbidden, userID)
}

func (s *Service) resolveRole(ctx context.Context, userID uuid.UUID, role model.Role) (model.Party, error) {
	party, err := s.ResolveParty(ctx, userID)
	if err != nil {
		return model.Party{}, err
	}
	if party.Role != role {
		return model.Party{}, fmt.Errorf("%w: caller must be a %s", ErrForbidden, role)
	}
	return party, nil
}

// threadForParty loads the thread and checks that party belongs to it.
func (s *Service) threadForParty(ctx context.Context, threadID uuid.UUID, party model.Party) (*model.Thread, error) {
	thread, err := s.repository.GetThread(ctx, threadID)
	if err != nil {
		return nil, fmt.Errorf("failed to get thread: %w", err)
	}
	if thread == nil {
		return nil, fmt.Errorf("%w: thread %s", ErrNotFound, threadID)
	}
	if !thread.HasParty(party) {
		return nil, fmt.Errorf("%w: caller is not a party of thread %s", ErrForbidden, threadID)
	}
	return thread, nil
}

// IsParty reports whether the user takes part in the thread.
func (s *Service) IsParty(ctx context.Context, userID, threadID uuid.UUID) (bool, error) {
	party, err := s.ResolveParty(ctx, userID)
	if err != nil {
		return false, err
	}
	if _, err := s.threadForParty(ctx, threadID, party); err != nil {
		return false, err
	}
	return true, nil
}
