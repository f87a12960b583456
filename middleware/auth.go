// middleware/auth.go
package middleware

import (
	"log/slog"
	"strings"

	"tcg-backend/services"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by RequireAuth.
const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
)

// RequireAuth verifies the "Authorization: Bearer <token>" header and exposes
// the caller's identity to handlers through c.Locals.
func RequireAuth(verifier services.TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "No token provided",
			})
		}

		id, err := verifier.Verify(token)
		if err != nil {
			slog.Debug("[AUTH] token rejected", "path", c.Path(), "error", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals(LocalUserID, id.UserID)
		c.Locals(LocalEmail, id.Email)
		return c.Next()
	}
}

// UserID returns the authenticated caller set by RequireAuth.
func UserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals(LocalUserID).(uint)
	return id, ok && id != 0
}

// bearerToken takes the second space-separated part of the header, so a bare
// token without the scheme is treated as missing.
func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
