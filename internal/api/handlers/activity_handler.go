package handlers

import (
	"SevChefs-API/internal/api/presenters"
	"SevChefs-API/pkg/activity"

	"github.com/gofiber/fiber/v2"
)

type (
	ActivityHandler interface {
		GetFeed(c *fiber.Ctx) error
	}

	activityHandler struct {
		activityService activity.ActivityService
	}
)

func NewActivityHandler(activityService activity.ActivityService) ActivityHandler {
	return &activityHandler{activityService: activityService}
}

func (h *activityHandler) GetFeed(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.activityService.GetFeed(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), err)
	}

	return presenters.DataResponse(c, fiber.StatusOK, res)
}
