package authz

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/littlesous/backend/internal/apperr"
	"github.com/littlesous/backend/internal/models"
	"github.com/littlesous/backend/internal/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) (*store.Store, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Child{}, &models.Recipe{}, &models.Interview{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return store.New(db), db
}

func seed(t *testing.T, db *gorm.DB) (owner, stranger *models.User, child *models.Child, interview *models.Interview, recipe *models.Recipe) {
	t.Helper()

	owner = &models.User{Email: "owner@example.com", Password: "x"}
	stranger = &models.User{Email: "stranger@example.com", Password: "x"}
	for _, u := range []*models.User{owner, stranger} {
		if err := db.Create(u).Error; err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}

	child = &models.Child{UserID: owner.ID, Name: "Emma", Age: 8, Theme: models.ThemeGirls}
	if err := db.Create(child).Error; err != nil {
		t.Fatalf("seed child: %v", err)
	}

	interview = &models.Interview{ChildID: child.ID, Status: models.InterviewInProgress, Version: 1}
	if err := db.Create(interview).Error; err != nil {
		t.Fatalf("seed interview: %v", err)
	}

	recipe = &models.Recipe{
		ChildID: child.ID, Title: "Mini Pizzas",
		Ingredients:  []models.Ingredient{{Item: "dough", Amount: "1 ball"}},
		Instructions: []models.InstructionStep{{Step: 1, Instruction: "Roll."}},
		Difficulty:   models.DifficultyBeginner, Category: "dinner", AgeWhenMade: 8,
	}
	if err := db.Create(recipe).Error; err != nil {
		t.Fatalf("seed recipe: %v", err)
	}
	return
}

func TestGuardChild(t *testing.T) {
	st, db := newTestStore(t)
	guard := NewGuard(st)
	owner, stranger, child, _, _ := seed(t, db)

	t.Run("owner resolves", func(t *testing.T) {
		got, err := guard.Child(owner.ID, child.ID)
		if err != nil {
			t.Fatalf("guard: %v", err)
		}
		if got.ID != child.ID {
			t.Errorf("resolved %s, want %s", got.ID, child.ID)
		}
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		if _, err := guard.Child(stranger.ID, child.ID); !errors.Is(err, apperr.ErrForbidden) {
			t.Errorf("err = %v, want ErrForbidden", err)
		}
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		if _, err := guard.Child(owner.ID, uuid.New()); !errors.Is(err, apperr.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestGuardInterview(t *testing.T) {
	st, db := newTestStore(t)
	guard := NewGuard(st)
	owner, stranger, child, interview, _ := seed(t, db)

	t.Run("owner resolves interview and child together", func(t *testing.T) {
		got, gotChild, err := guard.Interview(owner.ID, interview.ID)
		if err != nil {
			t.Fatalf("guard: %v", err)
		}
		if got.ID != interview.ID || gotChild.ID != child.ID {
			t.Errorf("resolved (%s, %s), want (%s, %s)", got.ID, gotChild.ID, interview.ID, child.ID)
		}
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		if _, _, err := guard.Interview(stranger.ID, interview.ID); !errors.Is(err, apperr.ErrForbidden) {
			t.Errorf("err = %v, want ErrForbidden", err)
		}
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		if _, _, err := guard.Interview(owner.ID, uuid.New()); !errors.Is(err, apperr.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestGuardRecipe(t *testing.T) {
	st, db := newTestStore(t)
	guard := NewGuard(st)
	owner, stranger, _, _, recipe := seed(t, db)

	t.Run("owner resolves", func(t *testing.T) {
		got, _, err := guard.Recipe(owner.ID, recipe.ID)
		if err != nil {
			t.Fatalf("guard: %v", err)
		}
		if got.ID != recipe.ID {
			t.Errorf("resolved %s, want %s", got.ID, recipe.ID)
		}
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		if _, _, err := guard.Recipe(stranger.ID, recipe.ID); !errors.Is(err, apperr.ErrForbidden) {
			t.Errorf("err = %v, want ErrForbidden", err)
		}
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		if _, _, err := guard.Recipe(owner.ID, uuid.New()); !errors.Is(err, apperr.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}
