package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sefazor/eventmate-backend/internal/models"
	jwtPkg "github.com/sefazor/eventmate-backend/pkg/jwt"
)

// AuthMiddleware resolves the bearer token to an acting identity before any
// handler logic runs. The resolved user id and username end up in locals.
func AuthMiddleware(tokens *jwtPkg.TokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Authorization header is required"))
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid authorization header format"))
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			if errors.Is(err, jwtPkg.ErrExpiredToken) {
				return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Token has expired"))
			}
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid token"))
		}

		c.Locals("userID", claims.UserID)
		c.Locals("username", claims.Username)

		return c.Next()
	}
}
