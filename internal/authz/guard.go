// Package authz implements the ownership check that runs before every
// operation addressing a child, interview or recipe: resolve the resource,
// walk the chain to its owning child, and compare the child's user id with
// the caller. One predicate, parameterized by resource type, instead of a
// chain-walk copied into every handler.
package authz

import (
	"errors"

	"github.com/google/uuid"
	"github.com/littlesous/backend/internal/apperr"
	"github.com/littlesous/backend/internal/models"
	"github.com/littlesous/backend/internal/store"
	"gorm.io/gorm"
)

type Guard struct {
	store *store.Store
}

func NewGuard(s *store.Store) *Guard {
	return &Guard{store: s}
}

// Child resolves childID and verifies it belongs to userID.
func (g *Guard) Child(userID, childID uuid.UUID) (*models.Child, error) {
	child, err := g.store.Children.GetByID(childID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if child.UserID != userID {
		return nil, apperr.ErrForbidden
	}
	return child, nil
}

// Interview resolves interviewID and verifies its owning child belongs to
// userID. Both the interview and the child are returned since callers almost
// always need the child's attributes next.
func (g *Guard) Interview(userID, interviewID uuid.UUID) (*models.Interview, *models.Child, error) {
	interview, err := g.store.Interviews.GetByID(interviewID)
	if err != nil {
		return nil, nil, notFoundOr(err)
	}
	child, err := g.Child(userID, interview.ChildID)
	if err != nil {
		// A dangling child FK means the resource is effectively gone.
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, nil, apperr.ErrForbidden
		}
		return nil, nil, err
	}
	return interview, child, nil
}

// Recipe resolves recipeID and verifies its owning child belongs to userID.
func (g *Guard) Recipe(userID, recipeID uuid.UUID) (*models.Recipe, *models.Child, error) {
	recipe, err := g.store.Recipes.GetByID(recipeID)
	if err != nil {
		return nil, nil, notFoundOr(err)
	}
	child, err := g.Child(userID, recipe.ChildID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, nil, apperr.ErrForbidden
		}
		return nil, nil, err
	}
	return recipe, child, nil
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrNotFound
	}
	return err
}
