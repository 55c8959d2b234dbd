package server

import (
	"errors"
	"strings"
	"unicode"

	"apt/internal/middleware"
	"apt/internal/models"
	"apt/internal/session"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
// The error message is derived from the parameter name (e.g. "id" -> "Invalid ID",
// "postId" -> "Invalid post ID").
func (s *Server) parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, models.NewValidationError("Invalid "+humanizeParam(param)))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// humanizeParam converts a route param name into a human-readable label.
// Examples: "id" -> "ID", "postId" -> "post ID".
func humanizeParam(param string) string {
	if param == "id" {
		return "ID"
	}
	if strings.HasSuffix(param, "Id") {
		prefix := param[:len(param)-2]
		words := splitCamel(prefix)
		return strings.ToLower(strings.Join(words, " ")) + " ID"
	}
	return param
}

// splitCamel splits a camelCase string into words.
func splitCamel(s string) []string {
	var words []string
	start := 0
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			words = append(words, s[start:i])
			start = i
		}
	}
	words = append(words, s[start:])
	return words
}

// principal extracts the authenticated caller placed in Locals by the session
// gate. On a missing principal it writes a 401 and returns errResponseWritten;
// this only happens when a handler is mounted outside the gate by mistake.
func (s *Server) principal(c *fiber.Ctx) (models.Principal, error) {
	p, ok := middleware.PrincipalFromCtx(c)
	if !ok {
		_ = models.RespondWithError(c, models.NewAuthError("Not logged in"))
		return models.Principal{}, errResponseWritten
	}
	return p, nil
}

// sessionToken returns the opaque token the gate validated for this request.
func (s *Server) sessionToken(c *fiber.Ctx) string {
	token, _ := c.Locals("sessionToken").(string)
	return token
}

// refreshSessionLoom propagates a loom change onto the live session so the
// gate hands out an up-to-date principal on subsequent requests. Session
// write failures are logged, not surfaced; the database already holds truth.
func (s *Server) refreshSessionLoom(c *fiber.Ctx, loom models.Loom) {
	token := s.sessionToken(c)
	if token == "" {
		return
	}
	if err := s.sessions.UpdateLoom(c.Context(), token, loom); err != nil && !errors.Is(err, session.ErrNotFound) {
		middleware.Logger.WarnContext(c.UserContext(), "session loom refresh failed", "error", err)
	}
}
