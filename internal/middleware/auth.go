// Package middleware provides authentication, logging, tracing, and
// rate-limiting middleware for the application.
package middleware

import (
	"strings"

	"aperture/internal/auth"
	"aperture/internal/models"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired enforces authentication for protected routes. A missing
// token is denied with 401; a present but invalid token (malformed,
// expired, tampered) is rejected with 403. On success the user id is
// stored in c.Locals("userID").
func AuthRequired(tokens *auth.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c)
		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Access denied"))
		}

		userID, err := tokens.Verify(tokenString)
		if err != nil {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewForbiddenError("Invalid token"))
		}

		c.Locals("userID", userID)
		return c.Next()
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header, or returns "".
func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
