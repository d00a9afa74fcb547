package store

import (
	"github.com/google/uuid"
	"github.com/littlesous/backend/internal/models"
	"gorm.io/gorm"
)

type RecipeStore struct {
	db *gorm.DB
}

func (s *RecipeStore) Create(recipe *models.Recipe) error {
	return s.db.Create(recipe).Error
}

func (s *RecipeStore) GetByID(id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.First(&recipe, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (s *RecipeStore) ListByChild(childID uuid.UUID) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.Where("child_id = ?", childID).Order("created_at DESC").Find(&recipes).Error
	return recipes, err
}

func (s *RecipeStore) ListFavoritesByChild(childID uuid.UUID) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.Where("child_id = ? AND is_favorite = ?", childID, true).
		Order("created_at DESC").Find(&recipes).Error
	return recipes, err
}

func (s *RecipeStore) Update(id uuid.UUID, updates map[string]interface{}) (*models.Recipe, error) {
	if err := s.db.Model(&models.Recipe{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}
