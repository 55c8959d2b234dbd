package server

import (
	"apt/internal/middleware"
	"apt/internal/models"
	"apt/internal/service"
	"apt/internal/session"

	"github.com/gofiber/fiber/v2"
)

// Signup handles POST /api/auth/signup.
// On success the new account is logged in immediately: a session is created
// and the cookie set, matching the login response shape.
func (s *Server) Signup(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Confirm  string `json:"confirm"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	principal, err := s.identityService.Register(c.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Confirm:  req.Confirm,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}

	sess, err := s.sessions.Create(c.Context(), *principal)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}
	middleware.SetSessionCookie(c, sess)

	middleware.Logger.InfoContext(c.UserContext(), "user registered",
		"username", principal.Username)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user": principal,
	})
}

// Login handles POST /api/auth/login. The login field accepts a username or
// an email address.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	if req.Login == "" || req.Password == "" {
		return models.RespondWithError(c,
			models.NewValidationError("Login and password are required"))
	}

	principal, err := s.identityService.Authenticate(c.Context(), req.Login, req.Password)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	sess, err := s.sessions.Create(c.Context(), *principal)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}
	middleware.SetSessionCookie(c, sess)

	middleware.Logger.InfoContext(c.UserContext(), "user logged in",
		"username", principal.Username)

	return c.JSON(fiber.Map{
		"user": principal,
	})
}

// Logout handles POST /api/auth/logout. Revokes the session server-side and
// clears the cookie. Logging out with no live session still succeeds.
func (s *Server) Logout(c *fiber.Ctx) error {
	if token := c.Cookies(middleware.SessionCookie); token != "" {
		if err := s.sessions.Revoke(c.Context(), token); err != nil && err != session.ErrNotFound {
			return models.RespondWithError(c, models.NewInternalError(err))
		}
	}
	middleware.ClearSessionCookie(c)
	return c.JSON(fiber.Map{"message": "Logged out"})
}
