package recipe

import (
	"SevChefs-API/entities"
	"context"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipes(ctx context.Context, nameContains string) ([]*entities.Recipe, error)
		GetRecipesByUploader(ctx context.Context, userID string) ([]*entities.Recipe, error)
		GetRecipesExcludingUploader(ctx context.Context, userID string) ([]*entities.Recipe, error)

		GetTagByID(ctx context.Context, id string) (*entities.RecipeTag, error)
		GetTagsByRecipe(ctx context.Context, recipeID string) ([]*entities.RecipeTag, error)
		CreateTagLink(ctx context.Context, link *entities.RecipeTagLink) error

		GetRecipeIngredients(ctx context.Context, recipeID string) ([]*entities.RecipeIngredient, error)
		CreateRecipeIngredient(ctx context.Context, ri *entities.RecipeIngredient) error
		DeleteRecipeIngredient(ctx context.Context, recipeID, ingredientID string) error

		GetInstructionByID(ctx context.Context, id string) (*entities.RecipeInstruction, error)
		GetInstructionsByRecipe(ctx context.Context, recipeID string) ([]*entities.RecipeInstruction, error)
		CreateInstruction(ctx context.Context, instruction *entities.RecipeInstruction) error
		UpdateInstruction(ctx context.Context, instruction *entities.RecipeInstruction) error
		DeleteInstruction(ctx context.Context, id string) error
		ShiftStepsAfter(ctx context.Context, recipeID string, stepNum int) error

		IsFavourited(ctx context.Context, profileID, recipeID string) (bool, error)
		CreateFavourite(ctx context.Context, favourite *entities.RecipeFavourite) error
		DeleteFavourites(ctx context.Context, profileID, recipeID string) error
		CountFavourites(ctx context.Context, recipeID string) (int64, error)
		GetFavouritedRecipes(ctx context.Context, profileID string) ([]*entities.Recipe, error)

		CreateComment(ctx context.Context, comment *entities.RecipeComment) error
		GetCommentsByRecipe(ctx context.Context, recipeID string) ([]*entities.RecipeComment, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Preload("UploadedBy").
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

func (r *recipeRepository) GetRecipes(ctx context.Context, nameContains string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	query := r.db.WithContext(ctx).Preload("UploadedBy").Order("created_at desc")
	if nameContains != "" {
		query = query.Where("name ILIKE ?", "%"+nameContains+"%")
	}
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipesByUploader(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("uploaded_by_id = ?", userID).
		Preload("UploadedBy").
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipesExcludingUploader(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Where("uploaded_by_id <> ?", userID).
		Preload("UploadedBy").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetTagByID(ctx context.Context, id string) (*entities.RecipeTag, error) {
	var tag entities.RecipeTag
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *recipeRepository) GetTagsByRecipe(ctx context.Context, recipeID string) ([]*entities.RecipeTag, error) {
	var tags []*entities.RecipeTag
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeTag{}).
		Joins("JOIN recipe_tag_links ON recipe_tags.id = recipe_tag_links.tag_id").
		Where("recipe_tag_links.recipe_id = ?", recipeID).
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *recipeRepository) CreateTagLink(ctx context.Context, link *entities.RecipeTagLink) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *recipeRepository) GetRecipeIngredients(ctx context.Context, recipeID string) ([]*entities.RecipeIngredient, error) {
	var ingredients []*entities.RecipeIngredient
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Preload("Ingredient").
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *recipeRepository) CreateRecipeIngredient(ctx context.Context, ri *entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Create(ri).Error
}

func (r *recipeRepository) DeleteRecipeIngredient(ctx context.Context, recipeID, ingredientID string) error {
	return r.db.WithContext(ctx).
		Where("recipe_id = ? AND ingredient_id = ?", recipeID, ingredientID).
		Delete(&entities.RecipeIngredient{}).Error
}

func (r *recipeRepository) GetInstructionByID(ctx context.Context, id string) (*entities.RecipeInstruction, error) {
	var instruction entities.RecipeInstruction
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&instruction).Error; err != nil {
		return nil, err
	}
	return &instruction, nil
}

func (r *recipeRepository) GetInstructionsByRecipe(ctx context.Context, recipeID string) ([]*entities.RecipeInstruction, error) {
	var instructions []*entities.RecipeInstruction
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("step_num asc").
		Find(&instructions).Error; err != nil {
		return nil, err
	}
	return instructions, nil
}

func (r *recipeRepository) CreateInstruction(ctx context.Context, instruction *entities.RecipeInstruction) error {
	return r.db.WithContext(ctx).Create(instruction).Error
}

func (r *recipeRepository) UpdateInstruction(ctx context.Context, instruction *entities.RecipeInstruction) error {
	return r.db.WithContext(ctx).Save(instruction).Error
}

func (r *recipeRepository) DeleteInstruction(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entities.RecipeInstruction{}).Error
}

// ShiftStepsAfter closes the gap left by a deleted step, keeping the
// recipe's step numbers a dense 1..N sequence.
func (r *recipeRepository) ShiftStepsAfter(ctx context.Context, recipeID string, stepNum int) error {
	return r.db.WithContext(ctx).
		Model(&entities.RecipeInstruction{}).
		Where("recipe_id = ? AND step_num > ?", recipeID, stepNum).
		UpdateColumn("step_num", gorm.Expr("step_num - 1")).Error
}

func (r *recipeRepository) IsFavourited(ctx context.Context, profileID, recipeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeFavourite{}).
		Where("user_profile_id = ? AND recipe_id = ?", profileID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) CreateFavourite(ctx context.Context, favourite *entities.RecipeFavourite) error {
	return r.db.WithContext(ctx).Create(favourite).Error
}

func (r *recipeRepository) DeleteFavourites(ctx context.Context, profileID, recipeID string) error {
	return r.db.WithContext(ctx).
		Where("user_profile_id = ? AND recipe_id = ?", profileID, recipeID).
		Delete(&entities.RecipeFavourite{}).Error
}

func (r *recipeRepository) CountFavourites(ctx context.Context, recipeID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeFavourite{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *recipeRepository) GetFavouritedRecipes(ctx context.Context, profileID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Joins("JOIN recipe_favourites ON recipes.id = recipe_favourites.recipe_id").
		Where("recipe_favourites.user_profile_id = ?", profileID).
		Preload("UploadedBy").
		Order("recipe_favourites.created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) CreateComment(ctx context.Context, comment *entities.RecipeComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *recipeRepository) GetCommentsByRecipe(ctx context.Context, recipeID string) ([]*entities.RecipeComment, error) {
	var comments []*entities.RecipeComment
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Preload("User").
		Order("created_at asc").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
