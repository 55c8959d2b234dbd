package service

import (
	"context"
	"strings"

	"apt/internal/models"
	"apt/internal/repository"
)

// MessageService owns message records for the public room and private
// threads.
type MessageService struct {
	messageRepo repository.MessageRepository
}

// NewMessageService returns a new MessageService.
func NewMessageService(messageRepo repository.MessageRepository) *MessageService {
	return &MessageService{messageRepo: messageRepo}
}

// PostPublic appends a public-room message. Blank text after trimming is a
// no-op; the returned message is nil in that case.
func (s *MessageService) PostPublic(ctx context.Context, principal models.Principal, text string) (*models.Message, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}

	message := &models.Message{
		Sender: principal.Username,
		Text:   trimmed,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// PostPrivate appends a message addressed to peer. Blank text is a no-op.
func (s *MessageService) PostPrivate(ctx context.Context, principal models.Principal, peer, text string) (*models.Message, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}

	receiver := peer
	message := &models.Message{
		Sender:   principal.Username,
		Receiver: &receiver,
		Text:     trimmed,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

// ListPublicThread returns the public room oldest-first. The ordering is
// deliberately the opposite of the feed's.
func (s *MessageService) ListPublicThread(ctx context.Context) ([]*models.Message, error) {
	return s.messageRepo.ListPublic(ctx)
}

// ListPrivateThread returns the symmetric two-party history between the
// principal and peer, oldest first. Both participants see the identical
// sequence; peer == principal is a valid self-thread.
func (s *MessageService) ListPrivateThread(ctx context.Context, principal models.Principal, peer string) ([]*models.Message, error) {
	return s.messageRepo.ListBetween(ctx, principal.Username, peer)
}
