package handlers

import (
	"SevChefs-API/domain"
	"SevChefs-API/internal/api/presenters"
	"SevChefs-API/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		UploadRecipe(c *fiber.Ctx) error
		EditRecipe(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		ListRecipes(c *fiber.Ctx) error
		GetUserRecipes(c *fiber.Ctx) error
		GetFavouritedRecipes(c *fiber.Ctx) error
		FavouriteRecipe(c *fiber.Ctx) error
		UnfavouriteRecipe(c *fiber.Ctx) error
		CommentRecipe(c *fiber.Ctx) error
		AddTags(c *fiber.Ctx) error
		AddIngredient(c *fiber.Ctx) error
		RemoveIngredient(c *fiber.Ctx) error
		UploadRecipeImage(c *fiber.Ctx) error
		DeleteRecipeImage(c *fiber.Ctx) error
		AddInstruction(c *fiber.Ctx) error
		DeleteInstruction(c *fiber.Ctx) error
		UploadInstructionImage(c *fiber.Ctx) error
		RecommendRecipe(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) UploadRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UploadRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err)
	}

	res, err := h.recipeService.UploadRecipe(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), err)
	}

	return presenters.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"recipe_id": res.RecipeID,
	})
}

func (h *recipeHandler) EditRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.EditRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err)
	}

	if err := h.recipeService.EditRecipe(c.Context(), c.Params("id"), *req, userID); err != nil {
		return presenters.ErrorResponse(c, statusOf(err), err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, nil)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	res, err := h.recipeService.GetRecipeDetail(c.Context(), c.Params("id"), viewerID(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), err)
	}

	return presenters.DataResponse(c, fiber.StatusOK, res)
}

func (h *recipeHandler) ListRecipes(c *fiber.Ctx) error {
	res, err := h.recipeService.ListRecipes(c.Context(), c.Query("q"), viewerID(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), err)
	}

	return presenters.DataResponse(c, fiber.StatusOK, res)
}

func (h *recipeHandler) GetUserRecipes(c *fiber.Ctx) error {
	res, err := h.recipeService.ListUserRecipes(c.Context(), c.Params("id"), viewerID(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), err)
	}

	return presenters.DataResponse(c, fiber.StatusOK, res)
}

func (h *recipeHandler) GetFavouritedRecipes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.recipeService.ListFavouritedRecipes(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), err)
	}

	return presenters.DataResponse(c, fiber.StatusOK, res)
}

func (h *recipeHandler) FavouriteRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.recipeService.FavouriteRecipe(c.Context(), c.Params("id"), userID); err != nil {
		return presenters.ErrorResponse(c, statusOf(err), err)
	}

	return presenters.SuccessResponse(c, fiber.StatusCreated, nil)
}

func (h *recipeHandler) UnfavouriteRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.recipeService.UnfavouriteRecipe(c.Context(), c.Params("id"), userID); err != nil {
		return presenters.ErrorResponse(c, statusOf(err), err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, nil)
}

func (h *recipeHandler) CommentRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CommentRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err)
	}

	if err := h.recipeService.CommentRecipe(c.Context(), c.Params("id"), *req, userID); err != nil {
		return presenters.ErrorResponse(c, statusOf(err), err)
	}

	return presenters.SuccessResponse(c, fiber.StatusCreated, nil)
}

func (h *recipeHandler) AddTags(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddTagsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err)
	}

	res, err := h.recipeService.AddTags(c.Context(), c.Params("id"), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), err)
	}

	return presenters.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"tag_ids_added":     res.TagIDsAdded,
		"tag_ids_not_added": res.TagIDsNotAdded,
	})
}

func (h *recipeHandler) AddIngredient(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddRecipeIngredientRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err)
	}

	if err := h.recipeService.AddIngredient(c.Context(), c.Params("rid"), c.Params("iid"), *req, userID); err != nil {
		return presenters.ErrorResponse(c, statusOf(err), err)
	}

	return presenters.SuccessResponse(c, fiber.StatusCreated, nil)
}

func (h *recipeHandler) RemoveIngredient(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.recipeService.RemoveIngredient(c.Context(), c.Params("rid"), c.Params("iid"), userID); err != nil {
		return presenters.ErrorResponse(c, statusOf(err), err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, nil)
}

func (h *recipeHandler) UploadRecipeImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	image, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err)
	}

	req := domain.UploadRecipeImageRequest{Image: image}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err)
	}

	if err := h.recipeService.UploadRecipeImage(c.Context(), c.Params("id"), req, userID); err != nil {
		return presenters.ErrorResponse(c, statusOf(err), err)
	}

	return presenters.SuccessResponse(c, fiber.StatusCreated, nil)
}

func (h *recipeHandler) DeleteRecipeImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.recipeService.DeleteRecipeImage(c.Context(), c.Params("id"), userID); err != nil {
		return presenters.ErrorResponse(c, statusOf(err), err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, nil)
}

func (h *recipeHandler) AddInstruction(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddInstructionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err)
	}

	res, err := h.recipeService.AddInstruction(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), err)
	}

	return presenters.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"instruction_id": res.InstructionID,
	})
}

func (h *recipeHandler) DeleteInstruction(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.DeleteInstructionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err)
	}

	if err := h.recipeService.DeleteInstruction(c.Context(), req.InstructionID, userID); err != nil {
		return presenters.ErrorResponse(c, statusOf(err), err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, nil)
}

func (h *recipeHandler) UploadInstructionImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	image, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err)
	}

	req := domain.UploadRecipeImageRequest{Image: image}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, err)
	}

	if err := h.recipeService.UploadInstructionImage(c.Context(), c.Params("id"), req, userID); err != nil {
		return presenters.ErrorResponse(c, statusOf(err), err)
	}

	return presenters.SuccessResponse(c, fiber.StatusCreated, nil)
}

func (h *recipeHandler) RecommendRecipe(c *fiber.Ctx) error {
	res, err := h.recipeService.RecommendRecipe(c.Context(), viewerID(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusOf(err), err)
	}

	// res is nil when there is nothing to recommend; the client gets
	// {"data": null} and decides what to show.
	return presenters.DataResponse(c, fiber.StatusOK, res)
}
