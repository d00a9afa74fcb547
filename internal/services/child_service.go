package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/littlesous/backend/internal/apperr"
	"github.com/littlesous/backend/internal/authz"
	"github.com/littlesous/backend/internal/dto"
	"github.com/littlesous/backend/internal/models"
	"github.com/littlesous/backend/internal/store"
)

type ChildService struct {
	store *store.Store
	guard *authz.Guard
}

func NewChildService(s *store.Store, guard *authz.Guard) *ChildService {
	return &ChildService{store: s, guard: guard}
}

func (s *ChildService) Create(userID uuid.UUID, req dto.CreateChildRequest) (*models.Child, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.Validation("name", "name is required")
	}
	if req.Age < models.MinChildAge || req.Age > models.MaxChildAge {
		return nil, apperr.Validation("age",
			fmt.Sprintf("age must be between %d and %d", models.MinChildAge, models.MaxChildAge))
	}
	if !models.ValidTheme(req.Theme) {
		return nil, apperr.Validation("theme", "theme must be girls or boys")
	}

	child := &models.Child{
		UserID:      userID,
		Name:        name,
		Age:         req.Age,
		Theme:       req.Theme,
		Preferences: strings.TrimSpace(req.Preferences),
	}
	if err := s.store.Children.Create(child); err != nil {
		return nil, err
	}
	return child, nil
}

func (s *ChildService) List(userID uuid.UUID) ([]models.Child, error) {
	return s.store.Children.ListByUser(userID)
}

func (s *ChildService) Get(userID, childID uuid.UUID) (*models.Child, error) {
	return s.guard.Child(userID, childID)
}

func (s *ChildService) Update(userID, childID uuid.UUID, req dto.UpdateChildRequest) (*models.Child, error) {
	if _, err := s.guard.Child(userID, childID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperr.Validation("name", "name cannot be empty")
		}
		updates["name"] = name
	}
	if req.Age != nil {
		if *req.Age < models.MinChildAge || *req.Age > models.MaxChildAge {
			return nil, apperr.Validation("age",
				fmt.Sprintf("age must be between %d and %d", models.MinChildAge, models.MaxChildAge))
		}
		updates["age"] = *req.Age
	}
	if req.Theme != nil {
		if !models.ValidTheme(*req.Theme) {
			return nil, apperr.Validation("theme", "theme must be girls or boys")
		}
		updates["theme"] = *req.Theme
	}
	if req.Preferences != nil {
		updates["preferences"] = strings.TrimSpace(*req.Preferences)
	}
	if len(updates) == 0 {
		return s.store.Children.GetByID(childID)
	}

	return s.store.Children.Update(childID, updates)
}

// Delete removes the child profile; its recipes and interviews go with it.
func (s *ChildService) Delete(userID, childID uuid.UUID) error {
	if _, err := s.guard.Child(userID, childID); err != nil {
		return err
	}
	return s.store.Children.Delete(childID)
}
