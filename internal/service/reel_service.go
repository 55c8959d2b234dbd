package service

import (
	"context"
	"strings"

	"apt/internal/models"
	"apt/internal/repository"
)

// ReelService owns the reel catalog.
type ReelService struct {
	reelRepo repository.ReelRepository
}

// NewReelService returns a new ReelService.
func NewReelService(reelRepo repository.ReelRepository) *ReelService {
	return &ReelService{reelRepo: reelRepo}
}

// CreateReel inserts a reel authored by the principal.
func (s *ReelService) CreateReel(ctx context.Context, principal models.Principal, videoURL string) (*models.Reel, error) {
	trimmed := strings.TrimSpace(videoURL)
	if trimmed == "" {
		return nil, models.NewValidationError("Video URL required")
	}

	reel := &models.Reel{
		Author:   principal.Username,
		VideoURL: trimmed,
	}
	if err := s.reelRepo.Create(ctx, reel); err != nil {
		return nil, err
	}
	return reel, nil
}

// ListReels returns reels newest-first.
func (s *ReelService) ListReels(ctx context.Context) ([]*models.Reel, error) {
	return s.reelRepo.List(ctx)
}
