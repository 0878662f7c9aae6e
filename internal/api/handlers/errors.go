package handlers

import (
	"SevChefs-API/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// statusOf maps service errors onto the API contract: missing entities are
// 404, ownership and token failures are 401, everything else is a 400.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrIngredientNotFound),
		errors.Is(err, domain.ErrInstructionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrNotRecipeOwner),
		errors.Is(err, domain.ErrTokenNotFound),
		errors.Is(err, domain.ErrTokenInvalid):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrUnknownActivityKind):
		// A stored entry we cannot render is corrupt data, not a bad request.
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusBadRequest
	}
}

// viewerID reads the viewer identity left by the auth middleware. Public
// routes run without it, so a missing value is just an anonymous viewer.
func viewerID(c *fiber.Ctx) string {
	if id, ok := c.Locals("user_id").(string); ok {
		return id
	}
	return ""
}
