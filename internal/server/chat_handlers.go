package server

import (
	"apt/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetPublicThread handles GET /api/chat.
// The shared room every account can read, oldest message first.
func (s *Server) GetPublicThread(c *fiber.Ctx) error {
	if _, err := s.principal(c); err != nil {
		return nil
	}

	messages, err := s.messageService.ListPublicThread(c.Context())
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{"messages": messages})
}

// PostPublicMessage handles POST /api/chat.
// A blank message is silently dropped.
func (s *Server) PostPublicMessage(c *fiber.Ctx) error {
	principal, err := s.principal(c)
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	message, err := s.messageService.PostPublic(c.Context(), principal, req.Text)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if message == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}

	return c.Status(fiber.StatusCreated).JSON(message)
}

// GetPrivateThread handles GET /api/chat/:username.
// Both parties see the identical thread regardless of who opened it.
func (s *Server) GetPrivateThread(c *fiber.Ctx) error {
	principal, err := s.principal(c)
	if err != nil {
		return nil
	}

	peer := c.Params("username")
	if _, err := s.identityService.GetProfile(c.Context(), peer); err != nil {
		return models.RespondWithError(c, err)
	}

	messages, err := s.messageService.ListPrivateThread(c.Context(), principal, peer)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"peer":     peer,
		"messages": messages,
	})
}

// PostPrivateMessage handles POST /api/chat/:username
func (s *Server) PostPrivateMessage(c *fiber.Ctx) error {
	principal, err := s.principal(c)
	if err != nil {
		return nil
	}

	peer := c.Params("username")
	if _, err := s.identityService.GetProfile(c.Context(), peer); err != nil {
		return models.RespondWithError(c, err)
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	message, err := s.messageService.PostPrivate(c.Context(), principal, peer, req.Text)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if message == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}

	return c.Status(fiber.StatusCreated).JSON(message)
}
