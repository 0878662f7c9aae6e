package ingredient

import (
	"SevChefs-API/domain"
	"SevChefs-API/entities"
	"context"
	"strings"

	"github.com/google/uuid"
)

type (
	IngredientService interface {
		CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (domain.CreateIngredientResponse, error)
		GetIngredients(ctx context.Context) ([]domain.IngredientResponse, error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

func (s *ingredientService) CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (domain.CreateIngredientResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CreateIngredientResponse{}, domain.ErrIngredientNameEmpty
	}

	ingredient := &entities.Ingredient{
		ID:          uuid.New(),
		Name:        name,
		Description: req.Description,
	}
	if err := s.ingredientRepository.CreateIngredient(ctx, ingredient); err != nil {
		return domain.CreateIngredientResponse{}, err
	}

	return domain.CreateIngredientResponse{IngredientID: ingredient.ID.String()}, nil
}

func (s *ingredientService) GetIngredients(ctx context.Context) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		res = append(res, domain.IngredientResponse{
			ID:          ingredient.ID.String(),
			Name:        ingredient.Name,
			Description: ingredient.Description,
			ImageURL:    ingredient.ImageURL,
		})
	}
	return res, nil
}
