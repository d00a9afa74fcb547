package store

import (
	"github.com/google/uuid"
	"github.com/littlesous/backend/internal/models"
	"gorm.io/gorm"
)

type InterviewStore struct {
	db *gorm.DB
}

func (s *InterviewStore) Create(interview *models.Interview) error {
	return s.db.Create(interview).Error
}

func (s *InterviewStore) GetByID(id uuid.UUID) (*models.Interview, error) {
	var interview models.Interview
	if err := s.db.First(&interview, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &interview, nil
}

// ActiveByChild returns the most recent in_progress interview for the child,
// or gorm.ErrRecordNotFound when there is none.
func (s *InterviewStore) ActiveByChild(childID uuid.UUID) (*models.Interview, error) {
	var interview models.Interview
	err := s.db.Where("child_id = ? AND status = ?", childID, models.InterviewInProgress).
		Order("created_at DESC").First(&interview).Error
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

func (s *InterviewStore) ListByChild(childID uuid.UUID) ([]models.Interview, error) {
	var interviews []models.Interview
	err := s.db.Where("child_id = ?", childID).Order("created_at DESC").Find(&interviews).Error
	return interviews, err
}

// UpdateVersioned applies updates only if the stored version still matches
// expectedVersion, bumping version by one. Returns false when a concurrent
// writer got there first.
func (s *InterviewStore) UpdateVersioned(id uuid.UUID, expectedVersion int, updates map[string]interface{}) (bool, error) {
	updates["version"] = expectedVersion + 1
	result := s.db.Model(&models.Interview{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
