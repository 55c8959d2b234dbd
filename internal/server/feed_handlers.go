package server

import (
	"apt/internal/models"
	"apt/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetFeed handles GET /api/feed.
// Returns every post, newest first, with comments attached oldest first.
func (s *Server) GetFeed(c *fiber.Ctx) error {
	principal, err := s.principal(c)
	if err != nil {
		return nil
	}

	posts, err := s.feedService.ListFeed(c.Context())
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"posts":  posts,
		"viewer": principal.Username,
	})
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	principal, err := s.principal(c)
	if err != nil {
		return nil
	}

	var req struct {
		MediaURL string `json:"media_url"`
		Caption  string `json:"caption"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	post, err := s.feedService.CreatePost(c.Context(), principal, service.CreatePostInput{
		MediaURL: req.MediaURL,
		Caption:  req.Caption,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// ToggleLike handles POST /api/posts/:id/like.
// Liking an already-liked post removes the like; the response carries the
// post's fresh count and whether the caller now likes it.
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	principal, err := s.principal(c)
	if err != nil {
		return nil
	}

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, liked, err := s.feedService.ToggleLike(c.Context(), principal, postID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{
		"post_id":    post.ID,
		"liked":      liked,
		"like_count": post.LikeCount,
	})
}

// CreateComment handles POST /api/posts/:id/comments.
// A blank comment is silently dropped; the thread is append-only.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	principal, err := s.principal(c)
	if err != nil {
		return nil
	}

	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	comment, err := s.feedService.AddComment(c.Context(), principal, postID, req.Text)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if comment == nil {
		return c.SendStatus(fiber.StatusNoContent)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}
