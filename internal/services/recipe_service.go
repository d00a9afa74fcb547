package services

import (
	"github.com/google/uuid"
	"github.com/littlesous/backend/internal/apperr"
	"github.com/littlesous/backend/internal/authz"
	"github.com/littlesous/backend/internal/models"
	"github.com/littlesous/backend/internal/store"
)

// RecipeService reads recipe cards and mutates the few fields a parent can
// touch after generation: the favorite/printed flags, the memory note and
// the card template. Recipe creation itself belongs to the interview flow.
type RecipeService struct {
	store *store.Store
	guard *authz.Guard
}

func NewRecipeService(s *store.Store, guard *authz.Guard) *RecipeService {
	return &RecipeService{store: s, guard: guard}
}

func (s *RecipeService) Get(userID, recipeID uuid.UUID) (*models.Recipe, error) {
	recipe, _, err := s.guard.Recipe(userID, recipeID)
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

func (s *RecipeService) ListByChild(userID, childID uuid.UUID) ([]models.Recipe, error) {
	if _, err := s.guard.Child(userID, childID); err != nil {
		return nil, err
	}
	return s.store.Recipes.ListByChild(childID)
}

func (s *RecipeService) ListFavoritesByChild(userID, childID uuid.UUID) ([]models.Recipe, error) {
	if _, err := s.guard.Child(userID, childID); err != nil {
		return nil, err
	}
	return s.store.Recipes.ListFavoritesByChild(childID)
}

func (s *RecipeService) SetFavorite(userID, recipeID uuid.UUID, isFavorite bool) (*models.Recipe, error) {
	if _, _, err := s.guard.Recipe(userID, recipeID); err != nil {
		return nil, err
	}
	return s.store.Recipes.Update(recipeID, map[string]interface{}{"is_favorite": isFavorite})
}

func (s *RecipeService) SetPrinted(userID, recipeID uuid.UUID, isPrinted bool) (*models.Recipe, error) {
	if _, _, err := s.guard.Recipe(userID, recipeID); err != nil {
		return nil, err
	}
	return s.store.Recipes.Update(recipeID, map[string]interface{}{"is_printed": isPrinted})
}

func (s *RecipeService) SetMemory(userID, recipeID uuid.UUID, memory string) (*models.Recipe, error) {
	if _, _, err := s.guard.Recipe(userID, recipeID); err != nil {
		return nil, err
	}
	return s.store.Recipes.Update(recipeID, map[string]interface{}{"child_memory": memory})
}

func (s *RecipeService) SetTemplate(userID, recipeID uuid.UUID, template string) (*models.Recipe, error) {
	if !models.ValidTemplate(template) {
		return nil, apperr.Validation("template_type", "template must be classic, modern or fun")
	}
	if _, _, err := s.guard.Recipe(userID, recipeID); err != nil {
		return nil, err
	}
	return s.store.Recipes.Update(recipeID, map[string]interface{}{"template_type": template})
}
