package repository

import (
	"context"

	"apt/internal/cache"
	"apt/internal/models"

	"gorm.io/gorm"
)

// ReelRepository defines persistence operations for reels. Reels are
// append-only; the read path is the only query surface.
type ReelRepository interface {
	Create(ctx context.Context, reel *models.Reel) error
	List(ctx context.Context) ([]*models.Reel, error)
}

type reelRepository struct {
	db *gorm.DB
}

// NewReelRepository creates a new ReelRepository
func NewReelRepository(db *gorm.DB) ReelRepository {
	return &reelRepository{db: db}
}

func (r *reelRepository) Create(ctx context.Context, reel *models.Reel) error {
	if err := r.db.WithContext(ctx).Create(reel).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateReels(ctx)
	return nil
}

// List returns reels newest-first.
func (r *reelRepository) List(ctx context.Context) ([]*models.Reel, error) {
	var reels []*models.Reel
	err := cache.Aside(ctx, cache.ReelsKey(), &reels, cache.ReelsTTL, func() error {
		if err := r.db.WithContext(ctx).Order("id DESC").Find(&reels).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reels, nil
}
