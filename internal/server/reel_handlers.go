package server

import (
	"apt/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetReels handles GET /api/reels
func (s *Server) GetReels(c *fiber.Ctx) error {
	if _, err := s.principal(c); err != nil {
		return nil
	}

	reels, err := s.reelService.ListReels(c.Context())
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{"reels": reels})
}

// CreateReel handles POST /api/reels
func (s *Server) CreateReel(c *fiber.Ctx) error {
	principal, err := s.principal(c)
	if err != nil {
		return nil
	}

	var req struct {
		VideoURL string `json:"video_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	reel, err := s.reelService.CreateReel(c.Context(), principal, req.VideoURL)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(reel)
}
