package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/sefazor/eventmate-backend/internal/models"
	"github.com/sefazor/eventmate-backend/internal/service"
	"github.com/sefazor/eventmate-backend/pkg/utils"
)

type FriendHandler struct {
	friendService *service.FriendService
	validator     *utils.Validator
	logger        *zap.Logger
}

func NewFriendHandler(friendService *service.FriendService, validator *utils.Validator, logger *zap.Logger) *FriendHandler {
	return &FriendHandler{
		friendService: friendService,
		validator:     validator,
		logger:        logger,
	}
}

func (h *FriendHandler) AddFriend(c *fiber.Ctx) error {
	userID, _, ok := actingUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	var req models.AddFriendRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Username is required"))
	}

	created, err := h.friendService.AddFriend(userID, req.Username)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	if !created {
		return c.JSON(models.SuccessResponse(nil, "Already friends"))
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(nil, "Friend added"))
}

func (h *FriendHandler) ListFriends(c *fiber.Ctx) error {
	userID, _, ok := actingUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	friends, err := h.friendService.ListFriends(userID)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"friends": friends}, "Friends retrieved"))
}
