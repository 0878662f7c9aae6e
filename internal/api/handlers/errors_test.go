package handlers

import (
	"SevChefs-API/domain"
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"missing recipe", domain.ErrRecipeNotFound, fiber.StatusNotFound},
		{"missing user", domain.ErrUserNotFound, fiber.StatusNotFound},
		{"missing profile", domain.ErrProfileNotFound, fiber.StatusNotFound},
		{"missing ingredient", domain.ErrIngredientNotFound, fiber.StatusNotFound},
		{"missing instruction", domain.ErrInstructionNotFound, fiber.StatusNotFound},
		{"not the owner", domain.ErrNotRecipeOwner, fiber.StatusUnauthorized},
		{"bad token", domain.ErrTokenInvalid, fiber.StatusUnauthorized},
		{"unrenderable stored entry", domain.ErrUnknownActivityKind, fiber.StatusInternalServerError},
		{"validation failure", domain.ErrRecipeNameEmpty, fiber.StatusBadRequest},
		{"anything else", errors.New("boom"), fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, statusOf(tt.err))
		})
	}
}
