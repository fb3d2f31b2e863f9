package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Middleware verifies the Bearer token and stashes the verified email claim
// in c.Locals("email") for downstream handlers.
func Middleware(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing token")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		email, err := ParseToken(secret, parts[1])
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals("email", email)
		return c.Next()
	}
}

// EmailFromCtx returns the verified email claim set by Middleware.
func EmailFromCtx(c *fiber.Ctx) (string, bool) {
	if v := c.Locals("email"); v != nil {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			return s, true
		}
	}
	return "", false
}
