package server

import (
	"apt/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Signal handles POST /api/signal/:peer.
// Placeholder for WebRTC call setup: the offer SDP is echoed straight back to
// the caller instead of being relayed to the peer. No session state is kept.
func (s *Server) Signal(c *fiber.Ctx) error {
	if _, err := s.principal(c); err != nil {
		return nil
	}

	peer := c.Params("peer")
	if _, err := s.identityService.GetProfile(c.Context(), peer); err != nil {
		return models.RespondWithError(c, err)
	}

	var req struct {
		SDP string `json:"sdp"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	if req.SDP == "" {
		return models.RespondWithError(c, models.NewValidationError("SDP offer required"))
	}

	return c.JSON(fiber.Map{
		"peer": peer,
		"sdp":  req.SDP,
	})
}
