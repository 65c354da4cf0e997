package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/sefazor/eventmate-backend/internal/models"
	"github.com/sefazor/eventmate-backend/pkg/apperror"
)

// handleError maps a service error to its HTTP status and the standard
// envelope. Internal causes go to the server log only, never into the body.
func handleError(c *fiber.Ctx, logger *zap.Logger, err error) error {
	appErr := apperror.From(err)
	if appErr.Status() >= fiber.StatusInternalServerError && appErr.Err != nil {
		logger.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(appErr.Err))
	}
	return c.Status(appErr.Status()).JSON(models.ErrorResponse(appErr.Message))
}

// actingUser reads the identity the auth middleware stored in locals.
func actingUser(c *fiber.Ctx) (uint, string, bool) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return 0, "", false
	}
	username, ok := c.Locals("username").(string)
	if !ok {
		return 0, "", false
	}
	return userID, username, true
}
