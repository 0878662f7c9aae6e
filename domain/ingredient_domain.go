package domain

import "errors"

var (
	ErrIngredientNotFound  = errors.New("ingredient not found")
	ErrIngredientNameEmpty = errors.New("ingredient name must not be empty")
)

type (
	CreateIngredientRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
	}

	CreateIngredientResponse struct {
		IngredientID string `json:"ingredient_id"`
	}

	IngredientResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url,omitempty"`
	}
)
