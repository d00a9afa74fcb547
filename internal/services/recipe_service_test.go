package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/littlesous/backend/internal/apperr"
	"github.com/littlesous/backend/internal/authz"
	"github.com/littlesous/backend/internal/models"
	"github.com/littlesous/backend/internal/store"
	"gorm.io/gorm"
)

func seedRecipe(t *testing.T, db *gorm.DB, childID uuid.UUID) *models.Recipe {
	t.Helper()

	recipe := &models.Recipe{
		ChildID:      childID,
		Title:        "Mini Pizzas",
		Ingredients:  []models.Ingredient{{Item: "dough", Amount: "1 ball"}},
		Instructions: []models.InstructionStep{{Step: 1, Instruction: "Roll out the dough."}},
		Difficulty:   models.DifficultyBeginner,
		Category:     "dinner",
		AgeWhenMade:  8,
		TemplateType: models.TemplateClassic,
	}
	if err := db.Create(recipe).Error; err != nil {
		t.Fatalf("seed recipe: %v", err)
	}
	return recipe
}

func TestRecipeAccess(t *testing.T) {
	db := newTestDB(t)
	st := store.New(db)
	svc := NewRecipeService(st, authz.NewGuard(st))
	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")
	child := seedChild(t, db, owner.ID, "Emma", 8)
	recipe := seedRecipe(t, db, child.ID)

	t.Run("owner can read", func(t *testing.T) {
		got, err := svc.Get(owner.ID, recipe.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Title != recipe.Title {
			t.Errorf("title = %q", got.Title)
		}
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		if _, err := svc.Get(other.ID, recipe.ID); !errors.Is(err, apperr.ErrForbidden) {
			t.Errorf("err = %v, want ErrForbidden", err)
		}
		if _, err := svc.SetFavorite(other.ID, recipe.ID, true); !errors.Is(err, apperr.ErrForbidden) {
			t.Errorf("set favorite err = %v, want ErrForbidden", err)
		}
	})

	t.Run("unknown recipe is not found", func(t *testing.T) {
		if _, err := svc.Get(owner.ID, uuid.New()); !errors.Is(err, apperr.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestRecipeMutations(t *testing.T) {
	db := newTestDB(t)
	st := store.New(db)
	svc := NewRecipeService(st, authz.NewGuard(st))
	user := seedUser(t, db, "parent@example.com")
	child := seedChild(t, db, user.ID, "Emma", 8)
	recipe := seedRecipe(t, db, child.ID)

	t.Run("favorite flag", func(t *testing.T) {
		updated, err := svc.SetFavorite(user.ID, recipe.ID, true)
		if err != nil {
			t.Fatalf("set favorite: %v", err)
		}
		if !updated.IsFavorite {
			t.Errorf("is_favorite not set")
		}
	})

	t.Run("printed flag", func(t *testing.T) {
		updated, err := svc.SetPrinted(user.ID, recipe.ID, true)
		if err != nil {
			t.Fatalf("set printed: %v", err)
		}
		if !updated.IsPrinted {
			t.Errorf("is_printed not set")
		}
	})

	t.Run("memory note", func(t *testing.T) {
		updated, err := svc.SetMemory(user.ID, recipe.ID, "We made these on a rainy Sunday.")
		if err != nil {
			t.Fatalf("set memory: %v", err)
		}
		if updated.ChildMemory == "" {
			t.Errorf("child_memory not stored")
		}
	})

	t.Run("template must be known", func(t *testing.T) {
		if _, err := svc.SetTemplate(user.ID, recipe.ID, "retro"); !apperr.IsValidation(err) {
			t.Errorf("err = %v, want validation error", err)
		}
		updated, err := svc.SetTemplate(user.ID, recipe.ID, models.TemplateFun)
		if err != nil {
			t.Fatalf("set template: %v", err)
		}
		if updated.TemplateType != models.TemplateFun {
			t.Errorf("template = %q, want fun", updated.TemplateType)
		}
	})
}

func TestRecipeListing(t *testing.T) {
	db := newTestDB(t)
	st := store.New(db)
	svc := NewRecipeService(st, authz.NewGuard(st))
	user := seedUser(t, db, "parent@example.com")
	child := seedChild(t, db, user.ID, "Emma", 8)
	first := seedRecipe(t, db, child.ID)
	seedRecipe(t, db, child.ID)

	if _, err := svc.SetFavorite(user.ID, first.ID, true); err != nil {
		t.Fatalf("set favorite: %v", err)
	}

	all, err := svc.ListByChild(user.ID, child.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("list returned %d recipes, want 2", len(all))
	}

	favorites, err := svc.ListFavoritesByChild(user.ID, child.ID)
	if err != nil {
		t.Fatalf("list favorites: %v", err)
	}
	if len(favorites) != 1 || favorites[0].ID != first.ID {
		t.Errorf("favorites = %d entries, want just the flagged recipe", len(favorites))
	}
}
