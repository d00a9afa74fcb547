// Package generation wraps the AI provider that writes interview questions,
// recipes and recipe images. Calls are single-attempt blocking I/O with a
// bounded timeout; retrying is the caller's decision.
package generation

import (
	"context"

	"github.com/littlesous/backend/internal/models"
)

// RecipeRequest carries everything the provider needs to write a recipe.
// MealType and SkillLevel always have values; the service fills in defaults
// when the interview answers lack them.
type RecipeRequest struct {
	ChildName       string
	Age             int
	Theme           string
	MealType        string
	SkillLevel      string
	Preferences     string
	SpecialOccasion string
	CookingTime     string
}

// GeneratedRecipe is the provider's structured recipe output.
type GeneratedRecipe struct {
	Title             string                   `json:"title"`
	Description       string                   `json:"description"`
	Ingredients       []models.Ingredient      `json:"ingredients"`
	Instructions      []models.InstructionStep `json:"instructions"`
	CookingTime       int                      `json:"cookingTime"`
	Difficulty        string                   `json:"difficulty"`
	Category          string                   `json:"category"`
	ChildMemoryPrompt string                   `json:"childMemoryPrompt"`
}

// Generator is the external AI provider, abstracted for tests.
type Generator interface {
	// GenerateQuestions returns 6-8 interview questions tailored to the
	// child's name, age and theme.
	GenerateQuestions(ctx context.Context, name string, age int, theme string) ([]models.QuestionSpec, error)

	// GenerateRecipe turns a completed answer set into a structured recipe.
	GenerateRecipe(ctx context.Context, req RecipeRequest) (*GeneratedRecipe, error)

	// GenerateImage returns an image URL for the recipe card. Callers are
	// expected to fall back to a placeholder when this fails.
	GenerateImage(ctx context.Context, title string, age int, theme string) (string, error)
}
