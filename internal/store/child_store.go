package store

import (
	"github.com/google/uuid"
	"github.com/littlesous/backend/internal/models"
	"gorm.io/gorm"
)

type ChildStore struct {
	db *gorm.DB
}

func (s *ChildStore) Create(child *models.Child) error {
	return s.db.Create(child).Error
}

func (s *ChildStore) GetByID(id uuid.UUID) (*models.Child, error) {
	var child models.Child
	if err := s.db.First(&child, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &child, nil
}

func (s *ChildStore) ListByUser(userID uuid.UUID) ([]models.Child, error) {
	var children []models.Child
	err := s.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&children).Error
	return children, err
}

func (s *ChildStore) Update(id uuid.UUID, updates map[string]interface{}) (*models.Child, error) {
	if err := s.db.Model(&models.Child{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Delete removes the child row; recipes and interviews go with it via the
// FK cascade.
func (s *ChildStore) Delete(id uuid.UUID) error {
	result := s.db.Where("id = ?", id).Delete(&models.Child{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
