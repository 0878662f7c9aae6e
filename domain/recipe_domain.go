package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	ErrRecipeNotFound      = errors.New("recipe not found")
	ErrNotRecipeOwner      = errors.New("only creator of recipe can edit")
	ErrRecipeNameEmpty     = errors.New("recipe name must not be empty")
	ErrRecipeDescEmpty     = errors.New("recipe description must not be empty")
	ErrCommentEmpty        = errors.New("recipe comment must not be empty")
	ErrServingSizeEmpty    = errors.New("serving size of ingredient must not be empty")
	ErrInstructionEmpty    = errors.New("instruction for recipe must not be empty")
	ErrStepNumInvalid      = errors.New("step number must be greater or equal to 1")
	ErrInstructionNotFound = errors.New("recipe instruction not found")
)

type (
	UploadRecipeRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description" validate:"required"`
		Difficulty  int    `json:"difficulty"`
	}

	UploadRecipeResponse struct {
		RecipeID string `json:"recipe_id"`
	}

	// EditRecipeRequest fields are pointers so absent fields stay untouched.
	EditRecipeRequest struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Difficulty  *int    `json:"difficulty_level"`
	}

	CommentRecipeRequest struct {
		Comment string `json:"comment" validate:"required"`
	}

	AddTagsRequest struct {
		TagIDs []string `json:"tag_ids" validate:"required"`
	}

	AddTagsResponse struct {
		TagIDsAdded    []string `json:"tag_ids_added"`
		TagIDsNotAdded []string `json:"tag_ids_not_added"`
	}

	AddRecipeIngredientRequest struct {
		ServingSize string `json:"serving_size" validate:"required"`
	}

	UploadRecipeImageRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	AddInstructionRequest struct {
		RecipeID       string `json:"recipe_id" validate:"required,uuid"`
		StepNum        int    `json:"step_num"`
		Instruction    string `json:"instruction"`
		DurationMinute int    `json:"duration_minute"`
		DurationHour   int    `json:"duration_hour"`
	}

	AddInstructionResponse struct {
		InstructionID string `json:"instruction_id"`
	}

	DeleteInstructionRequest struct {
		InstructionID string `json:"instruction_id" validate:"required,uuid"`
	}

	RecipeIngredientResponse struct {
		IngredientID string `json:"ingredient_id"`
		Name         string `json:"name"`
		Description  string `json:"description"`
		ServingSize  string `json:"serving_size"`
	}

	InstructionResponse struct {
		ID              string `json:"id"`
		StepNum         int    `json:"step_num"`
		Instruction     string `json:"instruction"`
		DurationMinutes int    `json:"duration_minutes"`
		ImageURL        string `json:"image_url,omitempty"`
	}

	CommentResponse struct {
		ID        string       `json:"id"`
		User      UserResponse `json:"user"`
		Text      string       `json:"text"`
		CreatedAt time.Time    `json:"created_at"`
	}

	RecipeResponse struct {
		ID                   string                     `json:"id"`
		Name                 string                     `json:"name"`
		Description          string                     `json:"description"`
		UploadedBy           UserResponse               `json:"uploaded_by"`
		DifficultyLevel      int                        `json:"difficulty_level"`
		ImageURL             string                     `json:"image_url,omitempty"`
		UploadDatetime       time.Time                  `json:"upload_datetime"`
		TotalDurationMinutes int                        `json:"total_duration_minutes"`
		FavouriteCount       int64                      `json:"favourite_count"`
		IsFavourited         bool                       `json:"is_favourited"`
		Tags                 []string                   `json:"tags"`
		Ingredients          []RecipeIngredientResponse `json:"ingredients"`
		Instructions         []InstructionResponse      `json:"instructions"`
		Comments             []CommentResponse          `json:"comments,omitempty"`
	}
)
