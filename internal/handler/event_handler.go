package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/sefazor/eventmate-backend/internal/models"
	"github.com/sefazor/eventmate-backend/internal/service"
)

type EventHandler struct {
	eventService *service.EventService
	logger       *zap.Logger
}

func NewEventHandler(eventService *service.EventService, logger *zap.Logger) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		logger:       logger,
	}
}

// Nearby proxies the upstream event listing for the user's stored location.
func (h *EventHandler) Nearby(c *fiber.Ctx) error {
	userID, _, ok := actingUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	events, err := h.eventService.Nearby(userID)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	return c.JSON(models.SuccessResponse(events, "Events retrieved"))
}

func (h *EventHandler) SaveEvent(c *fiber.Ctx) error {
	userID, _, ok := actingUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	apiEventID := c.Params("externalId")
	if apiEventID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Event id is required"))
	}

	saved, alreadySaved, err := h.eventService.SaveEvent(userID, apiEventID)
	if err != nil {
		return handleError(c, h.logger, err)
	}

	if alreadySaved {
		return c.JSON(models.SuccessResponse(saved, "Event already saved"))
	}
	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(saved, "Event saved"))
}

func (h *EventHandler) RemoveSavedEvent(c *fiber.Ctx) error {
	userID, _, ok := actingUser(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("User not authenticated"))
	}

	// A malformed id gets the same 404 as somebody else's bookmark.
	savedEventID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Saved event not found"))
	}

	if err := h.eventService.RemoveSavedEvent(userID, uint(savedEventID)); err != nil {
		return handleError(c, h.logger, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Event removed"))
}
