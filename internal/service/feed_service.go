package service

import (
	"context"
	"strings"

	"apt/internal/models"
	"apt/internal/repository"
)

// FeedService owns posts, the like relation and comment threads.
type FeedService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
}

// CreatePostInput is the input for creating a post.
type CreatePostInput struct {
	MediaURL string
	Caption  string
}

// NewFeedService returns a new FeedService.
func NewFeedService(postRepo repository.PostRepository, commentRepo repository.CommentRepository) *FeedService {
	return &FeedService{postRepo: postRepo, commentRepo: commentRepo}
}

// CreatePost creates a post authored by the principal with like count zero.
func (s *FeedService) CreatePost(ctx context.Context, principal models.Principal, in CreatePostInput) (*models.Post, error) {
	mediaURL := strings.TrimSpace(in.MediaURL)
	if mediaURL == "" {
		return nil, models.NewValidationError("Media URL required")
	}

	post := &models.Post{
		Author:   principal.Username,
		Caption:  strings.TrimSpace(in.Caption),
		MediaURL: mediaURL,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListFeed returns all posts newest-first, each carrying its live like count
// and full ordered comment list.
func (s *FeedService) ListFeed(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.ListFeed(ctx)
}

// ListUserPosts returns the given author's posts newest-first. Authors are
// soft references; an author with no live user row still lists normally.
func (s *FeedService) ListUserPosts(ctx context.Context, author string) ([]*models.Post, error) {
	return s.postRepo.ListByAuthor(ctx, author)
}

// ToggleLike flips the principal's like on the post and returns the updated
// post plus the resulting like state.
func (s *FeedService) ToggleLike(ctx context.Context, principal models.Principal, postID uint) (*models.Post, bool, error) {
	return s.postRepo.ToggleLike(ctx, postID, principal.Username)
}

// AddComment appends a comment. Blank text after trimming is a no-op, not an
// error; the returned comment is nil in that case.
func (s *FeedService) AddComment(ctx context.Context, principal models.Principal, postID uint, text string) (*models.Comment, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, nil
	}

	// The comments table carries a foreign key to posts, so verify the post
	// first and surface an absent one as NotFound rather than a DB fault.
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID: postID,
		Author: principal.Username,
		Text:   trimmed,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}
