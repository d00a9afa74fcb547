package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/littlesous/backend/internal/config"
	"github.com/littlesous/backend/internal/generation"
	"github.com/littlesous/backend/internal/models"
	"github.com/littlesous/backend/internal/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Child{},
		&models.Recipe{},
		&models.Interview{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:    email,
		Password: "hashed",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedChild(t *testing.T, db *gorm.DB, userID uuid.UUID, name string, age int) *models.Child {
	t.Helper()

	child := &models.Child{
		UserID: userID,
		Name:   name,
		Age:    age,
		Theme:  models.ThemeGirls,
	}
	if err := db.Create(child).Error; err != nil {
		t.Fatalf("seed child: %v", err)
	}
	return child
}

func testConfig() *config.Config {
	return &config.Config{
		PlaceholderImageURL: "https://example.com/placeholder.jpg",
	}
}

// stubGenerator returns canned provider output so the interview flow can be
// driven without network access.
type stubGenerator struct {
	questions    []models.QuestionSpec
	questionsErr error
	recipe       *generation.GeneratedRecipe
	recipeErr    error
	imageURL     string
	imageErr     error

	lastRecipeReq generation.RecipeRequest
}

func (g *stubGenerator) GenerateQuestions(_ context.Context, _ string, _ int, _ string) ([]models.QuestionSpec, error) {
	if g.questionsErr != nil {
		return nil, g.questionsErr
	}
	return g.questions, nil
}

func (g *stubGenerator) GenerateRecipe(_ context.Context, req generation.RecipeRequest) (*generation.GeneratedRecipe, error) {
	g.lastRecipeReq = req
	if g.recipeErr != nil {
		return nil, g.recipeErr
	}
	return g.recipe, nil
}

func (g *stubGenerator) GenerateImage(_ context.Context, _ string, _ int, _ string) (string, error) {
	if g.imageErr != nil {
		return "", g.imageErr
	}
	return g.imageURL, nil
}

func newStubGenerator() *stubGenerator {
	return &stubGenerator{
		questions: stubQuestions(),
		recipe: &generation.GeneratedRecipe{
			Title:       "Rainbow Pancakes",
			Description: "Fluffy pancakes with colorful fruit.",
			Ingredients: []models.Ingredient{
				{Item: "flour", Amount: "2 cups"},
				{Item: "milk", Amount: "1 cup"},
			},
			Instructions: []models.InstructionStep{
				{Step: 1, Instruction: "Mix the dry ingredients."},
				{Step: 2, Instruction: "Cook on a warm pan.", Tip: "Ask a grown-up to help."},
			},
			CookingTime:       20,
			Difficulty:        models.DifficultyBeginner,
			Category:          "breakfast",
			ChildMemoryPrompt: "What was your favorite part of making these?",
		},
		imageURL: "https://images.example.com/pancakes.png",
	}
}

func stubQuestions() []models.QuestionSpec {
	return []models.QuestionSpec{
		{ID: "meal_type", Question: "What meal should we make?", Type: models.QuestionSingleChoice,
			Options: []string{"breakfast", "lunch", "dinner", "snack"}, Required: true},
		{ID: "favorite_foods", Question: "Which foods do you love?", Type: models.QuestionMultipleChoice,
			Options: []string{"pasta", "fruit", "cheese", "chicken"}, Required: true},
		{ID: "skill_level", Question: "How much cooking have you done?", Type: models.QuestionSingleChoice,
			Options: []string{"beginner", "intermediate", "advanced"}, Required: true},
		{ID: "cooking_time", Question: "How long do you want to cook?", Type: models.QuestionSingleChoice,
			Options: []string{"15 minutes", "30 minutes", "an hour"}, Required: true},
		{ID: "helpers_count", Question: "How many helpers will you have?", Type: models.QuestionNumber, Required: false},
		{ID: "special_occasion", Question: "Is this for a special occasion?", Type: models.QuestionText, Required: false},
		{ID: "preferences", Question: "Anything we should avoid?", Type: models.QuestionText, Required: false},
	}
}

// answerAll walks the interview to completion through SubmitAnswer.
func answerAll(t *testing.T, svc *InterviewService, userID uuid.UUID, interview *models.Interview) *models.Interview {
	t.Helper()

	answers := map[string]interface{}{
		"meal_type":        "breakfast",
		"favorite_foods":   []interface{}{"fruit", "cheese"},
		"skill_level":      "beginner",
		"cooking_time":     "30 minutes",
		"helpers_count":    float64(1),
		"special_occasion": "",
		"preferences":      "no nuts",
	}

	current := interview
	for _, q := range current.Conversation.Questions {
		var err error
		current, err = svc.SubmitAnswer(userID, interview.ID, q.ID, answers[q.ID])
		if err != nil {
			t.Fatalf("answer %s: %v", q.ID, err)
		}
	}
	return current
}

func countRecipes(t *testing.T, s *store.Store, childID uuid.UUID) int {
	t.Helper()

	recipes, err := s.Recipes.ListByChild(childID)
	if err != nil {
		t.Fatalf("list recipes: %v", err)
	}
	return len(recipes)
}

var errProviderDown = errors.New("provider unavailable")
