package repository

import (
	"context"

	"apt/internal/models"

	"gorm.io/gorm"
)

// MessageRepository defines persistence operations for chat messages.
// Messages are append-only.
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	ListPublic(ctx context.Context) ([]*models.Message, error)
	ListBetween(ctx context.Context, userA, userB string) ([]*models.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ListPublic returns every public-room message, oldest first.
func (r *messageRepository) ListPublic(ctx context.Context) ([]*models.Message, error) {
	var messages []*models.Message
	err := r.db.WithContext(ctx).
		Where("receiver IS NULL").
		Order("id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}

// ListBetween returns the two-party conversation as the symmetric union of
// both directions, oldest first. userA == userB is a valid degenerate case
// (a self-thread).
func (r *messageRepository) ListBetween(ctx context.Context, userA, userB string) ([]*models.Message, error) {
	var messages []*models.Message
	err := r.db.WithContext(ctx).
		Where("(sender = ? AND receiver = ?) OR (sender = ? AND receiver = ?)",
			userA, userB, userB, userA).
		Order("id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return messages, nil
}
