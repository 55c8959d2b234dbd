package repository

import (
	"context"
	"errors"

	"apt/internal/cache"
	"apt/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepository defines persistence operations for posts and the like
// relation.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	ListFeed(ctx context.Context) ([]*models.Post, error)
	ListByAuthor(ctx context.Context, author string) ([]*models.Post, error)
	ToggleLike(ctx context.Context, postID uint, author string) (*models.Post, bool, error)
	CountLikes(ctx context.Context, postID uint) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateFeed(ctx)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.id ASC")
		}).
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Post", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &post, nil
}

// ListFeed returns every post newest-first with its ordered comment list
// attached. The composition is a single read so no post is ever observed
// without its comments.
func (r *postRepository) ListFeed(ctx context.Context) ([]*models.Post, error) {
	var posts []*models.Post
	err := cache.Aside(ctx, cache.FeedKey(), &posts, cache.FeedTTL, func() error {
		if err := r.db.WithContext(ctx).
			Preload("Comments", func(db *gorm.DB) *gorm.DB {
				return db.Order("comments.id ASC")
			}).
			Order("posts.id DESC").
			Find(&posts).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *postRepository) ListByAuthor(ctx context.Context, author string) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.id ASC")
		}).
		Where("author = ?", author).
		Order("posts.id DESC").
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// ToggleLike atomically flips the like state for (postID, author) and keeps
// the cached like count equal to the number of like rows. The whole
// read-check-then-write sequence runs inside one transaction; the composite
// unique index on likes makes concurrent duplicate inserts impossible, and
// recounting (rather than incrementing) means the tally can never go
// negative.
func (r *postRepository) ToggleLike(ctx context.Context, postID uint, author string) (*models.Post, bool, error) {
	var liked bool

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Post", postID)
			}
			return models.NewInternalError(err)
		}

		res := tx.Where("post_id = ? AND author = ?", postID, author).Delete(&models.Like{})
		if res.Error != nil {
			return models.NewInternalError(res.Error)
		}

		if res.RowsAffected == 0 {
			// Nothing to remove, so this toggle is a like. DO NOTHING keeps a
			// concurrent duplicate insert from failing the transaction.
			like := &models.Like{PostID: postID, Author: author}
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error; err != nil {
				return models.NewInternalError(err)
			}
			liked = true
		}

		recount := tx.Model(&models.Post{}).
			Where("id = ?", postID).
			Update("like_count", gorm.Expr("(SELECT COUNT(*) FROM likes WHERE likes.post_id = ?)", postID))
		if recount.Error != nil {
			return models.NewInternalError(recount.Error)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	cache.InvalidateFeed(ctx)

	post, err := r.GetByID(ctx, postID)
	if err != nil {
		return nil, false, err
	}
	return post, liked, nil
}

func (r *postRepository) CountLikes(ctx context.Context, postID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("post_id = ?", postID).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
