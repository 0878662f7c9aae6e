package recipe

import (
	"SevChefs-API/domain"
	"SevChefs-API/entities"
	"SevChefs-API/internal/utils/storage"
	"SevChefs-API/pkg/activity"
	"SevChefs-API/pkg/ingredient"
	"SevChefs-API/pkg/user"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		UploadRecipe(ctx context.Context, req domain.UploadRecipeRequest, userID string) (domain.UploadRecipeResponse, error)
		EditRecipe(ctx context.Context, recipeID string, req domain.EditRecipeRequest, userID string) error
		GetRecipeDetail(ctx context.Context, recipeID string, viewerID string) (domain.RecipeResponse, error)
		ListRecipes(ctx context.Context, nameContains string, viewerID string) ([]domain.RecipeResponse, error)
		ListUserRecipes(ctx context.Context, targetUserID string, viewerID string) ([]domain.RecipeResponse, error)
		ListFavouritedRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error)
		FavouriteRecipe(ctx context.Context, recipeID string, userID string) error
		UnfavouriteRecipe(ctx context.Context, recipeID string, userID string) error
		CommentRecipe(ctx context.Context, recipeID string, req domain.CommentRecipeRequest, userID string) error
		AddTags(ctx context.Context, recipeID string, req domain.AddTagsRequest, userID string) (domain.AddTagsResponse, error)
		AddIngredient(ctx context.Context, recipeID, ingredientID string, req domain.AddRecipeIngredientRequest, userID string) error
		RemoveIngredient(ctx context.Context, recipeID, ingredientID string, userID string) error
		UploadRecipeImage(ctx context.Context, recipeID string, req domain.UploadRecipeImageRequest, userID string) error
		DeleteRecipeImage(ctx context.Context, recipeID string, userID string) error
		AddInstruction(ctx context.Context, req domain.AddInstructionRequest, userID string) (domain.AddInstructionResponse, error)
		DeleteInstruction(ctx context.Context, instructionID string, userID string) error
		UploadInstructionImage(ctx context.Context, instructionID string, req domain.UploadRecipeImageRequest, userID string) error
		RecommendRecipe(ctx context.Context, viewerID string) (*domain.RecipeResponse, error)
	}

	recipeService struct {
		recipeRepository     RecipeRepository
		userRepository       user.UserRepository
		ingredientRepository ingredient.IngredientRepository
		activityRepository   activity.ActivityRepository
		s3                   storage.AwsS3
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	userRepository user.UserRepository,
	ingredientRepository ingredient.IngredientRepository,
	activityRepository activity.ActivityRepository,
	s3 storage.AwsS3,
) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		userRepository:       userRepository,
		ingredientRepository: ingredientRepository,
		activityRepository:   activityRepository,
		s3:                   s3,
	}
}

func (s *recipeService) getRecipe(ctx context.Context, recipeID string) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

// getOwnedRecipe loads a recipe and rejects callers other than its uploader.
// Every mutating recipe operation goes through here first.
func (s *recipeService) getOwnedRecipe(ctx context.Context, recipeID string, userID string) (*entities.Recipe, error) {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe.UploadedByID.String() != userID {
		return nil, domain.ErrNotRecipeOwner
	}
	return recipe, nil
}

func (s *recipeService) UploadRecipe(ctx context.Context, req domain.UploadRecipeRequest, userID string) (domain.UploadRecipeResponse, error) {
	name := strings.TrimSpace(req.Name)
	description := strings.TrimSpace(req.Description)

	if name == "" {
		return domain.UploadRecipeResponse{}, domain.ErrRecipeNameEmpty
	}
	if description == "" {
		return domain.UploadRecipeResponse{}, domain.ErrRecipeDescEmpty
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.UploadRecipeResponse{}, domain.ErrParseUUID
	}

	recipe := &entities.Recipe{
		ID:              uuid.New(),
		UploadedByID:    userUUID,
		Name:            name,
		Description:     description,
		DifficultyLevel: req.Difficulty,
	}
	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.UploadRecipeResponse{}, err
	}

	return domain.UploadRecipeResponse{RecipeID: recipe.ID.String()}, nil
}

func (s *recipeService) EditRecipe(ctx context.Context, recipeID string, req domain.EditRecipeRequest, userID string) error {
	recipe, err := s.getOwnedRecipe(ctx, recipeID, userID)
	if err != nil {
		return err
	}

	// Absent fields stay untouched.
	if req.Name != nil {
		recipe.Name = *req.Name
	}
	if req.Description != nil {
		recipe.Description = *req.Description
	}
	if req.Difficulty != nil {
		recipe.DifficultyLevel = *req.Difficulty
	}

	return s.recipeRepository.UpdateRecipe(ctx, recipe)
}

func (s *recipeService) buildRecipeResponse(ctx context.Context, recipe *entities.Recipe, viewerID string, withComments bool) (domain.RecipeResponse, error) {
	res := domain.RecipeResponse{
		ID:              recipe.ID.String(),
		Name:            recipe.Name,
		Description:     recipe.Description,
		DifficultyLevel: recipe.DifficultyLevel,
		ImageURL:        recipe.ImageURL,
		UploadDatetime:  recipe.CreatedAt,
		Tags:            []string{},
		Ingredients:     []domain.RecipeIngredientResponse{},
		Instructions:    []domain.InstructionResponse{},
	}

	if recipe.UploadedBy != nil {
		res.UploadedBy = domain.UserResponse{
			ID:       recipe.UploadedBy.ID.String(),
			Username: recipe.UploadedBy.Username,
			Email:    recipe.UploadedBy.Email,
		}
	}

	tags, err := s.recipeRepository.GetTagsByRecipe(ctx, res.ID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	for _, tag := range tags {
		res.Tags = append(res.Tags, tag.Text)
	}

	recipeIngredients, err := s.recipeRepository.GetRecipeIngredients(ctx, res.ID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	for _, ri := range recipeIngredients {
		rir := domain.RecipeIngredientResponse{
			IngredientID: ri.IngredientID.String(),
			ServingSize:  ri.ServingSize,
		}
		if ri.Ingredient != nil {
			rir.Name = ri.Ingredient.Name
			rir.Description = ri.Ingredient.Description
		}
		res.Ingredients = append(res.Ingredients, rir)
	}

	// Total duration is recomputed on every read, never stored.
	instructions, err := s.recipeRepository.GetInstructionsByRecipe(ctx, res.ID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	for _, instruction := range instructions {
		res.TotalDurationMinutes += instruction.DurationMinutes
		res.Instructions = append(res.Instructions, domain.InstructionResponse{
			ID:              instruction.ID.String(),
			StepNum:         instruction.StepNum,
			Instruction:     instruction.Instruction,
			DurationMinutes: instruction.DurationMinutes,
			ImageURL:        instruction.ImageURL,
		})
	}

	favouriteCount, err := s.recipeRepository.CountFavourites(ctx, res.ID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	res.FavouriteCount = favouriteCount

	if viewerID != "" {
		if profile, err := s.userRepository.GetProfileByUserID(ctx, viewerID); err == nil {
			favourited, err := s.recipeRepository.IsFavourited(ctx, profile.ID.String(), res.ID)
			if err != nil {
				return domain.RecipeResponse{}, err
			}
			res.IsFavourited = favourited
		}
	}

	if withComments {
		comments, err := s.recipeRepository.GetCommentsByRecipe(ctx, res.ID)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		res.Comments = make([]domain.CommentResponse, 0, len(comments))
		for _, comment := range comments {
			cr := domain.CommentResponse{
				ID:        comment.ID.String(),
				Text:      comment.Text,
				CreatedAt: comment.CreatedAt,
			}
			if comment.User != nil {
				cr.User = domain.UserResponse{
					ID:       comment.User.ID.String(),
					Username: comment.User.Username,
					Email:    comment.User.Email,
				}
			}
			res.Comments = append(res.Comments, cr)
		}
	}

	return res, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string, viewerID string) (domain.RecipeResponse, error) {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return s.buildRecipeResponse(ctx, recipe, viewerID, true)
}

func (s *recipeService) buildRecipeResponses(ctx context.Context, recipes []*entities.Recipe, viewerID string) ([]domain.RecipeResponse, error) {
	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		rr, err := s.buildRecipeResponse(ctx, recipe, viewerID, false)
		if err != nil {
			return nil, err
		}
		res = append(res, rr)
	}
	return res, nil
}

func (s *recipeService) ListRecipes(ctx context.Context, nameContains string, viewerID string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, nameContains)
	if err != nil {
		return nil, err
	}
	return s.buildRecipeResponses(ctx, recipes, viewerID)
}

func (s *recipeService) ListUserRecipes(ctx context.Context, targetUserID string, viewerID string) ([]domain.RecipeResponse, error) {
	if _, err := s.userRepository.GetUserByID(ctx, targetUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	recipes, err := s.recipeRepository.GetRecipesByUploader(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	return s.buildRecipeResponses(ctx, recipes, viewerID)
}

func (s *recipeService) ListFavouritedRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error) {
	profile, err := s.userRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}

	recipes, err := s.recipeRepository.GetFavouritedRecipes(ctx, profile.ID.String())
	if err != nil {
		return nil, err
	}
	return s.buildRecipeResponses(ctx, recipes, userID)
}

// ownerActivityEntry prepares an entry directed at a recipe's uploader.
func ownerActivityEntry(kind string, actorID uuid.UUID, recipe *entities.Recipe, actorAvatar string) *entities.ActivityEntry {
	ownerID := recipe.UploadedByID
	return &entities.ActivityEntry{
		ID:             uuid.New(),
		ActorID:        actorID,
		TargetUserID:   &ownerID,
		Kind:           kind,
		MainImageURL:   actorAvatar,
		TargetImageURL: recipe.ImageURL,
		CreatedAt:      time.Now(),
	}
}

func (s *recipeService) actorAvatar(ctx context.Context, userID string) string {
	profile, err := s.userRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		return ""
	}
	return profile.AvatarURL
}

func (s *recipeService) FavouriteRecipe(ctx context.Context, recipeID string, userID string) error {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return err
	}

	profile, err := s.userRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProfileNotFound
		}
		return err
	}

	// At most one favourite per (profile, recipe); a repeat is a no-op.
	favourited, err := s.recipeRepository.IsFavourited(ctx, profile.ID.String(), recipeID)
	if err != nil {
		return err
	}
	if favourited {
		return nil
	}

	if err := s.recipeRepository.CreateFavourite(ctx, &entities.RecipeFavourite{
		ID:            uuid.New(),
		UserProfileID: profile.ID,
		RecipeID:      recipe.ID,
		CreatedAt:     time.Now(),
	}); err != nil {
		return err
	}

	return s.activityRepository.CreateEntry(ctx,
		ownerActivityEntry(entities.ActivityFavourited, profile.UserID, recipe, profile.AvatarURL))
}

func (s *recipeService) UnfavouriteRecipe(ctx context.Context, recipeID string, userID string) error {
	if _, err := s.getRecipe(ctx, recipeID); err != nil {
		return err
	}

	profile, err := s.userRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProfileNotFound
		}
		return err
	}

	// Idempotent: deleting zero rows is still success.
	return s.recipeRepository.DeleteFavourites(ctx, profile.ID.String(), recipeID)
}

func (s *recipeService) CommentRecipe(ctx context.Context, recipeID string, req domain.CommentRecipeRequest, userID string) error {
	text := strings.TrimSpace(req.Comment)
	if text == "" {
		return domain.ErrCommentEmpty
	}

	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if err := s.recipeRepository.CreateComment(ctx, &entities.RecipeComment{
		ID:        uuid.New(),
		RecipeID:  recipe.ID,
		UserID:    userUUID,
		Text:      text,
		CreatedAt: time.Now(),
	}); err != nil {
		return err
	}

	return s.activityRepository.CreateEntry(ctx,
		ownerActivityEntry(entities.ActivityCommented, userUUID, recipe, s.actorAvatar(ctx, userID)))
}

func (s *recipeService) AddTags(ctx context.Context, recipeID string, req domain.AddTagsRequest, userID string) (domain.AddTagsResponse, error) {
	recipe, err := s.getOwnedRecipe(ctx, recipeID, userID)
	if err != nil {
		return domain.AddTagsResponse{}, err
	}

	res := domain.AddTagsResponse{
		TagIDsAdded:    []string{},
		TagIDsNotAdded: []string{},
	}

	// Unknown ids are skipped, not an error; partial success is reported.
	seen := make(map[string]bool)
	for _, tagID := range req.TagIDs {
		if seen[tagID] {
			continue
		}
		seen[tagID] = true

		tag, err := s.recipeRepository.GetTagByID(ctx, tagID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				res.TagIDsNotAdded = append(res.TagIDsNotAdded, tagID)
				continue
			}
			return domain.AddTagsResponse{}, err
		}

		if err := s.recipeRepository.CreateTagLink(ctx, &entities.RecipeTagLink{
			ID:       uuid.New(),
			RecipeID: recipe.ID,
			TagID:    tag.ID,
		}); err != nil {
			return domain.AddTagsResponse{}, err
		}
		res.TagIDsAdded = append(res.TagIDsAdded, tagID)
	}

	return res, nil
}

func (s *recipeService) AddIngredient(ctx context.Context, recipeID, ingredientID string, req domain.AddRecipeIngredientRequest, userID string) error {
	servingSize := strings.TrimSpace(req.ServingSize)
	if servingSize == "" {
		return domain.ErrServingSizeEmpty
	}

	recipe, err := s.getOwnedRecipe(ctx, recipeID, userID)
	if err != nil {
		return err
	}

	ing, err := s.ingredientRepository.GetIngredientByID(ctx, ingredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	return s.recipeRepository.CreateRecipeIngredient(ctx, &entities.RecipeIngredient{
		ID:           uuid.New(),
		RecipeID:     recipe.ID,
		IngredientID: ing.ID,
		ServingSize:  servingSize,
	})
}

func (s *recipeService) RemoveIngredient(ctx context.Context, recipeID, ingredientID string, userID string) error {
	if _, err := s.getOwnedRecipe(ctx, recipeID, userID); err != nil {
		return err
	}

	if _, err := s.ingredientRepository.GetIngredientByID(ctx, ingredientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	// Idempotent: a missing join row is not an error.
	return s.recipeRepository.DeleteRecipeIngredient(ctx, recipeID, ingredientID)
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, recipeID string, req domain.UploadRecipeImageRequest, userID string) error {
	recipe, err := s.getOwnedRecipe(ctx, recipeID, userID)
	if err != nil {
		return err
	}

	firstUpload := recipe.ImageURL == ""
	if !firstUpload {
		if objectKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL); objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	fileName := fmt.Sprintf("recipe-%s", recipe.ID.String())
	objectKey, err := s.s3.UploadFile(fileName, req.Image, "recipes", storage.AllowImage...)
	if err != nil {
		return err
	}

	recipe.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return err
	}

	// Only the first image upload announces the recipe.
	if firstUpload {
		return s.activityRepository.CreateEntry(ctx, &entities.ActivityEntry{
			ID:           uuid.New(),
			ActorID:      recipe.UploadedByID,
			Kind:         entities.ActivityUploaded,
			MainImageURL: recipe.ImageURL,
			CreatedAt:    time.Now(),
		})
	}
	return nil
}

func (s *recipeService) DeleteRecipeImage(ctx context.Context, recipeID string, userID string) error {
	recipe, err := s.getOwnedRecipe(ctx, recipeID, userID)
	if err != nil {
		return err
	}

	if recipe.ImageURL == "" {
		return nil
	}

	if objectKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL); objectKey != "" {
		_ = s.s3.DeleteFile(objectKey)
	}

	recipe.ImageURL = ""
	return s.recipeRepository.UpdateRecipe(ctx, recipe)
}

func (s *recipeService) AddInstruction(ctx context.Context, req domain.AddInstructionRequest, userID string) (domain.AddInstructionResponse, error) {
	recipe, err := s.getOwnedRecipe(ctx, req.RecipeID, userID)
	if err != nil {
		return domain.AddInstructionResponse{}, err
	}

	if req.StepNum < 1 {
		return domain.AddInstructionResponse{}, domain.ErrStepNumInvalid
	}
	if strings.TrimSpace(req.Instruction) == "" {
		return domain.AddInstructionResponse{}, domain.ErrInstructionEmpty
	}

	instruction := &entities.RecipeInstruction{
		ID:              uuid.New(),
		RecipeID:        recipe.ID,
		StepNum:         req.StepNum,
		Instruction:     req.Instruction,
		DurationMinutes: req.DurationHour*60 + req.DurationMinute,
	}
	if err := s.recipeRepository.CreateInstruction(ctx, instruction); err != nil {
		return domain.AddInstructionResponse{}, err
	}

	return domain.AddInstructionResponse{InstructionID: instruction.ID.String()}, nil
}

func (s *recipeService) getOwnedInstruction(ctx context.Context, instructionID string, userID string) (*entities.RecipeInstruction, error) {
	instruction, err := s.recipeRepository.GetInstructionByID(ctx, instructionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInstructionNotFound
		}
		return nil, err
	}

	if _, err := s.getOwnedRecipe(ctx, instruction.RecipeID.String(), userID); err != nil {
		return nil, err
	}
	return instruction, nil
}

func (s *recipeService) DeleteInstruction(ctx context.Context, instructionID string, userID string) error {
	instruction, err := s.getOwnedInstruction(ctx, instructionID, userID)
	if err != nil {
		return err
	}

	if err := s.recipeRepository.DeleteInstruction(ctx, instructionID); err != nil {
		return err
	}

	return s.recipeRepository.ShiftStepsAfter(ctx, instruction.RecipeID.String(), instruction.StepNum)
}

func (s *recipeService) UploadInstructionImage(ctx context.Context, instructionID string, req domain.UploadRecipeImageRequest, userID string) error {
	instruction, err := s.getOwnedInstruction(ctx, instructionID, userID)
	if err != nil {
		return err
	}

	if instruction.ImageURL != "" {
		if objectKey := s.s3.GetObjectKeyFromLink(instruction.ImageURL); objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	fileName := fmt.Sprintf("instruction-%s", instruction.ID.String())
	objectKey, err := s.s3.UploadFile(fileName, req.Image, "instructions", storage.AllowImage...)
	if err != nil {
		return err
	}

	instruction.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	return s.recipeRepository.UpdateInstruction(ctx, instruction)
}

// RecommendRecipe picks one recipe uniformly at random, leaving out the
// caller's own uploads when a viewer is known. A nil response means there is
// nothing to recommend.
func (s *recipeService) RecommendRecipe(ctx context.Context, viewerID string) (*domain.RecipeResponse, error) {
	var (
		recipes []*entities.Recipe
		err     error
	)
	if viewerID != "" {
		recipes, err = s.recipeRepository.GetRecipesExcludingUploader(ctx, viewerID)
	} else {
		recipes, err = s.recipeRepository.GetRecipes(ctx, "")
	}
	if err != nil {
		return nil, err
	}

	if len(recipes) == 0 {
		return nil, nil
	}

	recommended := recipes[rand.Intn(len(recipes))]
	res, err := s.buildRecipeResponse(ctx, recommended, viewerID, false)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
