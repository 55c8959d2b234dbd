// Package middleware provides authentication and authorization middleware for the application.
package middleware

import (
	"errors"
	"time"

	"apt/internal/models"
	"apt/internal/session"

	"github.com/gofiber/fiber/v2"
)

// SessionCookie is the name of the opaque session token cookie.
const SessionCookie = "apt_session"

// SetSessionCookie writes the session cookie for a freshly created or
// refreshed session.
func SetSessionCookie(c *fiber.Ctx, sess *session.Session) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    sess.Token,
		Expires:  sess.ExpiresAt,
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
	})
}

// SessionAuth is the authorization gate. It resolves the session cookie to an
// authenticated principal, sliding the session expiry on every request. An
// anonymous request is answered with a control-flow redirect to /login, not
// an error.
func SessionAuth(store session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(SessionCookie)
		if token == "" {
			return c.Redirect("/login", fiber.StatusFound)
		}

		sess, err := store.Get(c.Context(), token)
		if err != nil {
			if errors.Is(err, session.ErrNotFound) {
				ClearSessionCookie(c)
				return c.Redirect("/login", fiber.StatusFound)
			}
			Logger.ErrorContext(c.UserContext(), "session lookup failed",
				"error", err.Error())
			return models.RespondWithError(c, models.NewInternalError(err))
		}

		// Keep the browser-side expiry in step with the slid server-side TTL.
		SetSessionCookie(c, sess)

		c.Locals("principal", sess.Principal)
		c.Locals("username", sess.Principal.Username)
		c.Locals("sessionToken", token)
		return c.Next()
	}
}

// PrincipalFromCtx returns the authenticated principal stored by SessionAuth.
func PrincipalFromCtx(c *fiber.Ctx) (models.Principal, bool) {
	principal, ok := c.Locals("principal").(models.Principal)
	return principal, ok
}
