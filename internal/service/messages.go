package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vetcare/chat-service/internal/access"
	"github.com/vetcare/chat-service/internal/model"
)

// SendMessage stores a text message if the thread currently accepts messages.
func (s *Service) SendMessage(ctx context.Context, callerID, threadID uuid.UUID, text string) (*model.Message, error) {
	party, err := s.ResolveParty(ctx, callerID)
	if err != nil {
		return nil, err
	}

	thread, err := s.threadForParty(ctx, threadID, party)
	if err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: text cannot be empty", ErrValidation)
	}

	now := s.now()
	if !access.CanSend(thread, now) {
		return nil, ErrWindowClosed
	}

	message := newTextMessage(thread.ID, party, text, now)
	err = s.repository.WithTx(ctx, func(ctx context.Context) error {
		return s.storeMessage(ctx, &message)
	})
	if err != nil {
		return nil, err
	}

	return &message, nil
}

// GetMessages returns up to limit messages sent before the given time, oldest first.
func (s *Service) GetMessages(ctx context.Context, callerID, threadID uuid.UUID, limit int, before *time.Time) (model.MessageList, error) {
	party, err := s.ResolveParty(ctx, callerID)
	if err != nil {
		return nil, err
	}

	if _, err := s.threadForParty(ctx, threadID, party); err != nil {
		return nil, err
	}

	messages, err := s.repository.GetThreadMessages(ctx, threadID, before, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	messages.Reverse()
	return messages, nil
}

func (s *Service) storeMessage(ctx context.Context, message *model.Message) error {
	if err := s.repository.SaveMessage(ctx, message); err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}
	if err := s.repository.TouchLastMessage(ctx, message.ThreadID, message.SentAt); err != nil {
		return fmt.Errorf("failed to update thread: %w", err)
	}
	return nil
}

func newTextMessage(threadID uuid.UUID, author model.Party, text string, sentAt time.Time) model.Message {
	userID := author.UserID
	return model.Message{
		ID:           uuid.New(),
		ThreadID:     threadID,
		AuthorRole:   author.Role,
		AuthorUserID: &userID,
		Text:         text,
		Kind:         model.TextMessageKind,
		SentAt:       sentAt,
	}
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultMessagesLimit
	}
	if limit > MaxMessagesLimit {
		return MaxMessagesLimit
	}
	return limit
}
