package handler

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/sefazor/eventmate-backend/internal/models"
	"github.com/sefazor/eventmate-backend/internal/service"
	"github.com/sefazor/eventmate-backend/pkg/utils"
)

type UserHandler struct {
	userService *service.UserService
	validator   *utils.Validator
	logger      *zap.Logger
}

func NewUserHandler(userService *service.UserService, validator *utils.Validator, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator,
		logger:      logger,
	}
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	userID, username, ok := actingUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	profile, err := h.userService.GetProfile(userID, username, c.Params("username"))
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return c.JSON(models.SuccessResponse(profile, "Profile retrieved"))
}

func (h *UserHandler) SaveLocation(c *fiber.Ctx) error {
	userID, _, ok := actingUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.SaveLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid location data"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid location data"))
	}

	if err := h.userService.UpdateLocation(userID, *req.Lat, *req.Lng); err != nil {
		return handleError(c, h.logger, err)
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"status": "Location saved"}, "Location saved"))
}

// EditProfile takes a multipart form: a bio field and an optional picture
// file. An empty bio still overwrites the stored one.
func (h *UserHandler) EditProfile(c *fiber.Ctx) error {
	userID, _, ok := actingUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	bio := c.FormValue("bio")

	var picture []byte
	if fileHeader, err := c.FormFile("picture"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to read picture"))
		}
		defer file.Close()

		buf, err := io.ReadAll(file)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to read picture"))
		}
		picture = buf
	}

	if err := h.userService.EditProfile(userID, bio, picture); err != nil {
		return handleError(c, h.logger, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Profile updated"))
}
