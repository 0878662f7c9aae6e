package recipe

import (
	"SevChefs-API/entities"
	"context"
	"mime/multipart"

	"github.com/stretchr/testify/mock"
)

type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) GetRecipes(ctx context.Context, nameContains string) ([]*entities.Recipe, error) {
	args := m.Called(ctx, nameContains)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) GetRecipesByUploader(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) GetRecipesExcludingUploader(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) GetTagByID(ctx context.Context, id string) (*entities.RecipeTag, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RecipeTag), args.Error(1)
}

func (m *MockRecipeRepository) GetTagsByRecipe(ctx context.Context, recipeID string) ([]*entities.RecipeTag, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.RecipeTag), args.Error(1)
}

func (m *MockRecipeRepository) CreateTagLink(ctx context.Context, link *entities.RecipeTagLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockRecipeRepository) GetRecipeIngredients(ctx context.Context, recipeID string) ([]*entities.RecipeIngredient, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.RecipeIngredient), args.Error(1)
}

func (m *MockRecipeRepository) CreateRecipeIngredient(ctx context.Context, ri *entities.RecipeIngredient) error {
	args := m.Called(ctx, ri)
	return args.Error(0)
}

func (m *MockRecipeRepository) DeleteRecipeIngredient(ctx context.Context, recipeID, ingredientID string) error {
	args := m.Called(ctx, recipeID, ingredientID)
	return args.Error(0)
}

func (m *MockRecipeRepository) GetInstructionByID(ctx context.Context, id string) (*entities.RecipeInstruction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RecipeInstruction), args.Error(1)
}

func (m *MockRecipeRepository) GetInstructionsByRecipe(ctx context.Context, recipeID string) ([]*entities.RecipeInstruction, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.RecipeInstruction), args.Error(1)
}

func (m *MockRecipeRepository) CreateInstruction(ctx context.Context, instruction *entities.RecipeInstruction) error {
	args := m.Called(ctx, instruction)
	return args.Error(0)
}

func (m *MockRecipeRepository) UpdateInstruction(ctx context.Context, instruction *entities.RecipeInstruction) error {
	args := m.Called(ctx, instruction)
	return args.Error(0)
}

func (m *MockRecipeRepository) DeleteInstruction(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRecipeRepository) ShiftStepsAfter(ctx context.Context, recipeID string, stepNum int) error {
	args := m.Called(ctx, recipeID, stepNum)
	return args.Error(0)
}

func (m *MockRecipeRepository) IsFavourited(ctx context.Context, profileID, recipeID string) (bool, error) {
	args := m.Called(ctx, profileID, recipeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRecipeRepository) CreateFavourite(ctx context.Context, favourite *entities.RecipeFavourite) error {
	args := m.Called(ctx, favourite)
	return args.Error(0)
}

func (m *MockRecipeRepository) DeleteFavourites(ctx context.Context, profileID, recipeID string) error {
	args := m.Called(ctx, profileID, recipeID)
	return args.Error(0)
}

func (m *MockRecipeRepository) CountFavourites(ctx context.Context, recipeID string) (int64, error) {
	args := m.Called(ctx, recipeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecipeRepository) GetFavouritedRecipes(ctx context.Context, profileID string) ([]*entities.Recipe, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) CreateComment(ctx context.Context, comment *entities.RecipeComment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockRecipeRepository) GetCommentsByRecipe(ctx context.Context, recipeID string) ([]*entities.RecipeComment, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.RecipeComment), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUserWithProvisioning(ctx context.Context, user *entities.User, profile *entities.UserProfile, token *entities.AuthToken) error {
	args := m.Called(ctx, user, profile, token)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetProfileByUserID(ctx context.Context, userID string) (*entities.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.UserProfile), args.Error(1)
}

func (m *MockUserRepository) GetAllProfiles(ctx context.Context) ([]*entities.UserProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.UserProfile), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, profile *entities.UserProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockUserRepository) GetAuthTokenByUserID(ctx context.Context, userID string) (*entities.AuthToken, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AuthToken), args.Error(1)
}

func (m *MockUserRepository) IsFollowing(ctx context.Context, followerID, followeeID string) (bool, error) {
	args := m.Called(ctx, followerID, followeeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) CreateFollow(ctx context.Context, follow *entities.UserFollow) error {
	args := m.Called(ctx, follow)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteFollow(ctx context.Context, followerID, followeeID string) error {
	args := m.Called(ctx, followerID, followeeID)
	return args.Error(0)
}

func (m *MockUserRepository) CountFollowers(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) CountFollowing(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type MockIngredientRepository struct {
	mock.Mock
}

func (m *MockIngredientRepository) CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	args := m.Called(ctx, ingredient)
	return args.Error(0)
}

func (m *MockIngredientRepository) GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) GetIngredients(ctx context.Context) ([]*entities.Ingredient, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Ingredient), args.Error(1)
}

type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) CreateEntry(ctx context.Context, entry *entities.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockActivityRepository) GetFeedForViewer(ctx context.Context, viewerID string) ([]*entities.ActivityEntry, error) {
	args := m.Called(ctx, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ActivityEntry), args.Error(1)
}

type MockAwsS3 struct {
	mock.Mock
}

func (m *MockAwsS3) UploadFile(fileName string, file *multipart.FileHeader, dir string, allowTypes ...string) (string, error) {
	args := m.Called(fileName, file, dir, allowTypes)
	return args.String(0), args.Error(1)
}

func (m *MockAwsS3) DeleteFile(objectKey string) error {
	args := m.Called(objectKey)
	return args.Error(0)
}

func (m *MockAwsS3) GetPublicLinkKey(objectKey string) string {
	args := m.Called(objectKey)
	return args.String(0)
}

func (m *MockAwsS3) GetObjectKeyFromLink(link string) string {
	args := m.Called(link)
	return args.String(0)
}
