package server

import (
	"apt/internal/models"
	"apt/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetUsers handles GET /api/users.
// Directory of every account except the caller's own, for starting chats.
func (s *Server) GetUsers(c *fiber.Ctx) error {
	principal, err := s.principal(c)
	if err != nil {
		return nil
	}

	users, err := s.identityService.ListUsers(c.Context(), principal)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{"users": users})
}

// GetProfile handles GET /api/users/:username
func (s *Server) GetProfile(c *fiber.Ctx) error {
	if _, err := s.principal(c); err != nil {
		return nil
	}

	username := c.Params("username")
	user, err := s.identityService.GetProfile(c.Context(), username)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(user)
}

// UpdateProfile handles PUT /api/users/:username.
// Only the profile owner may edit; an unrecognized loom falls back to none.
// The live session is refreshed so the gate serves the new loom right away.
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	principal, err := s.principal(c)
	if err != nil {
		return nil
	}

	var req struct {
		Bio  string `json:"bio"`
		Loom string `json:"loom"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	user, err := s.identityService.UpdateProfile(c.Context(), principal, service.UpdateProfileInput{
		TargetUsername: c.Params("username"),
		Bio:            req.Bio,
		Loom:           req.Loom,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	s.refreshSessionLoom(c, user.Loom)

	return c.JSON(user)
}

// GetUserPosts handles GET /api/users/:username/posts
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	if _, err := s.principal(c); err != nil {
		return nil
	}

	username := c.Params("username")
	if _, err := s.identityService.GetProfile(c.Context(), username); err != nil {
		return models.RespondWithError(c, err)
	}

	posts, err := s.feedService.ListUserPosts(c.Context(), username)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{"posts": posts})
}
