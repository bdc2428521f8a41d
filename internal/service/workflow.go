package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vetcare/chat-service/internal/model"
)

type AcceptResult struct {
	// Window is nil when the thread was vet-initiated and there was nothing to accept.
	Window  *model.Window
	Message *model.Message
}

type StartResult struct {
	ThreadID uuid.UUID
	Message  *model.Message
}

// RequestChat opens, or re-opens, an owner's pending request to chat with a vet.
func (s *Service) RequestChat(ctx context.Context, callerID, vetID uuid.UUID) (uuid.UUID, error) {
	owner, err := s.resolveRole(ctx, callerID, model.RoleOwner)
	if err != nil {
		return uuid.Nil, err
	}

	exists, err := s.repository.VetExists(ctx, vetID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to check vet: %w", err)
	}
	if !exists {
		return uuid.Nil, fmt.Errorf("%w: vet %s", ErrNotFound, vetID)
	}

	threadID, err := s.repository.UpsertOwnerRequest(ctx, vetID, owner.ProfileID, s.now())
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save chat request: %w", err)
	}

	return threadID, nil
}

// AcceptRequest grants the owner a new window and posts the system divider for it.
// Both writes share one transaction.
func (s *Service) AcceptRequest(ctx context.Context, callerID, threadID uuid.UUID) (*AcceptResult, error) {
	vet, err := s.resolveRole(ctx, callerID, model.RoleVet)
	if err != nil {
		return nil, err
	}

	thread, err := s.threadForParty(ctx, threadID, vet)
	if err != nil {
		return nil, err
	}

	if thread.InitiatedBy == model.RoleVet {
		return &AcceptResult{}, nil
	}

	now := s.now()
	window := model.Window{From: now, To: now.Add(s.windowDuration)}
	message := model.Message{
		ID:         uuid.New(),
		ThreadID:   thread.ID,
		AuthorRole: model.RoleSystem,
		Text:       windowStartText(window),
		Kind:       model.WindowStartMessageKind,
		SentAt:     now,
	}

	err = s.repository.WithTx(ctx, func(ctx context.Context) error {
		if err := s.repository.AppendWindow(ctx, thread.ID, window); err != nil {
			return fmt.Errorf("failed to append window: %w", err)
		}
		if err := s.repository.SaveMessage(ctx, &message); err != nil {
			return fmt.Errorf("failed to save window message: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &AcceptResult{Window: &window, Message: &message}, nil
}

// DeclineRequest closes a pending request without opening a window.
func (s *Service) DeclineRequest(ctx context.Context, callerID, threadID uuid.UUID) error {
	vet, err := s.resolveRole(ctx, callerID, model.RoleVet)
	if err != nil {
		return err
	}

	thread, err := s.threadForParty(ctx, threadID, vet)
	if err != nil {
		return err
	}

	if thread.InitiatedBy == model.RoleVet {
		return nil
	}

	if err := s.repository.DeclineThread(ctx, thread.ID, s.now()); err != nil {
		return fmt.Errorf("failed to decline thread: %w", err)
	}
	return nil
}

// StartAsVet opens an unrestricted thread with an owner. An existing thread keeps its
// initiated_by, so a thread the owner started stays window-gated.
func (s *Service) StartAsVet(ctx context.Context, callerID, ownerID uuid.UUID, text string) (*StartResult, error) {
	vet, err := s.resolveRole(ctx, callerID, model.RoleVet)
	if err != nil {
		return nil, err
	}

	exists, err := s.repository.OwnerExists(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to check owner: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: owner %s", ErrNotFound, ownerID)
	}

	now := s.now()
	text = strings.TrimSpace(text)
	res := &StartResult{}

	err = s.repository.WithTx(ctx, func(ctx context.Context) error {
		threadID, err := s.repository.UpsertVetStart(ctx, vet.ProfileID, ownerID, now)
		if err != nil {
			return fmt.Errorf("failed to start thread: %w", err)
		}
		res.ThreadID = threadID

		if text == "" {
			return nil
		}

		message := newTextMessage(threadID, vet, text, now)
		if err := s.storeMessage(ctx, &message); err != nil {
			return err
		}
		res.Message = &message
		return nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}

func windowStartText(w model.Window) string {
	return fmt.Sprintf("Chat window open until %s", w.To.UTC().Format(time.RFC3339))
}
