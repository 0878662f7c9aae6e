package presenters

import "github.com/gofiber/fiber/v2"

// ErrorResponse writes the API error contract: {"detail": "<message>"}.
func ErrorResponse(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(fiber.Map{"detail": err.Error()})
}

// DataResponse wraps a read payload under a data key.
func DataResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{"data": data})
}

// SuccessResponse acknowledges a mutation, optionally with extra keys
// (e.g. the id of a created resource).
func SuccessResponse(c *fiber.Ctx, status int, extra fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}
