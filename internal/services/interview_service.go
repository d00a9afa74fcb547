package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/littlesous/backend/internal/apperr"
	"github.com/littlesous/backend/internal/authz"
	"github.com/littlesous/backend/internal/config"
	"github.com/littlesous/backend/internal/generation"
	"github.com/littlesous/backend/internal/models"
	"github.com/littlesous/backend/internal/store"
	"gorm.io/gorm"
)

// InterviewService drives the interview state machine: a strict linear
// question sequence where the cursor alone decides the next expected
// question. All persisted interview updates go through a version check, so
// concurrent answer submissions cannot both advance the same cursor.
type InterviewService struct {
	store     *store.Store
	guard     *authz.Guard
	generator generation.Generator
	cfg       *config.Config
}

func NewInterviewService(s *store.Store, guard *authz.Guard, gen generation.Generator, cfg *config.Config) *InterviewService {
	return &InterviewService{store: s, guard: guard, generator: gen, cfg: cfg}
}

// Start begins an interview for the child, or returns the existing active
// one unchanged. Nothing is persisted when question generation fails.
func (s *InterviewService) Start(ctx context.Context, userID, childID uuid.UUID) (*models.Interview, error) {
	child, err := s.guard.Child(userID, childID)
	if err != nil {
		return nil, err
	}

	active, err := s.store.Interviews.ActiveByChild(childID)
	if err == nil {
		return active, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	questions, err := s.generator.GenerateQuestions(ctx, child.Name, child.Age, child.Theme)
	if err != nil {
		return nil, apperr.Upstream("questions", err)
	}

	interview := &models.Interview{
		ChildID: childID,
		Status:  models.InterviewInProgress,
		Version: 1,
		Conversation: models.Conversation{
			Questions: questions,
			Answers:   map[string]interface{}{},
			Cursor:    0,
		},
	}
	if err := s.store.Interviews.Create(interview); err != nil {
		return nil, err
	}

	slog.Info("interview started", "interview_id", interview.ID, "child_id", childID, "questions", len(questions))
	return interview, nil
}

// Get returns the interview after the ownership check.
func (s *InterviewService) Get(userID, interviewID uuid.UUID) (*models.Interview, error) {
	interview, _, err := s.guard.Interview(userID, interviewID)
	if err != nil {
		return nil, err
	}
	return interview, nil
}

// SubmitAnswer records the answer for the question at the cursor and
// advances it by exactly one. Out-of-order question ids are rejected, so a
// client can always recover by re-reading the interview.
func (s *InterviewService) SubmitAnswer(userID, interviewID uuid.UUID, questionID string, answer interface{}) (*models.Interview, error) {
	interview, _, err := s.guard.Interview(userID, interviewID)
	if err != nil {
		return nil, err
	}
	if interview.Terminal() {
		return nil, apperr.ErrInvalidState
	}

	conv := interview.Conversation
	current, ok := conv.CurrentQuestion()
	if !ok {
		// Every question answered; the only valid next step is Complete.
		return nil, apperr.ErrInvalidState
	}
	if questionID != current.ID {
		return nil, apperr.Validation("question_id",
			fmt.Sprintf("expected question %q, got %q", current.ID, questionID))
	}
	if err := validateAnswer(current, answer); err != nil {
		return nil, err
	}

	if conv.Answers == nil {
		conv.Answers = map[string]interface{}{}
	}
	conv.Answers[current.ID] = answer
	conv.Cursor++

	updated, err := s.store.Interviews.UpdateVersioned(interview.ID, interview.Version,
		map[string]interface{}{"conversation": conv})
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperr.ErrConflict
	}

	return s.store.Interviews.GetByID(interview.ID)
}

// Complete generates the recipe from the accumulated answers, persists it
// and marks the interview completed. If recipe generation fails nothing is
// persisted and the interview stays in_progress, so the call is retryable.
// An image failure only degrades the card to the placeholder image.
func (s *InterviewService) Complete(ctx context.Context, userID, interviewID uuid.UUID) (*models.Recipe, *models.Interview, error) {
	interview, child, err := s.guard.Interview(userID, interviewID)
	if err != nil {
		return nil, nil, err
	}
	if interview.Terminal() {
		return nil, nil, apperr.ErrInvalidState
	}
	if !interview.Conversation.Answered() {
		return nil, nil, apperr.ErrInvalidState
	}

	conv := interview.Conversation
	req := generation.RecipeRequest{
		ChildName:       child.Name,
		Age:             child.Age,
		Theme:           child.Theme,
		MealType:        conv.StringAnswer("meal_type", "breakfast"),
		SkillLevel:      conv.StringAnswer("skill_level", "beginner"),
		Preferences:     conv.StringAnswer("preferences", child.Preferences),
		SpecialOccasion: conv.StringAnswer("special_occasion", ""),
		CookingTime:     conv.StringAnswer("cooking_time", ""),
	}

	generated, err := s.generator.GenerateRecipe(ctx, req)
	if err != nil {
		return nil, nil, apperr.Upstream("recipe", err)
	}

	imageURL, err := s.generator.GenerateImage(ctx, generated.Title, child.Age, child.Theme)
	if err != nil {
		slog.Warn("image generation failed, using placeholder",
			"interview_id", interview.ID, "error", err)
		imageURL = s.cfg.PlaceholderImageURL
	}

	recipe := &models.Recipe{
		ChildID:      child.ID,
		Title:        generated.Title,
		Description:  generated.Description,
		Ingredients:  generated.Ingredients,
		Instructions: generated.Instructions,
		CookingTime:  generated.CookingTime,
		Difficulty:   generated.Difficulty,
		Category:     generated.Category,
		AgeWhenMade:  child.Age,
		TemplateType: models.TemplateClassic,
		ImageURL:     imageURL,
	}

	err = s.store.Transaction(func(tx *store.Store) error {
		if err := tx.Recipes.Create(recipe); err != nil {
			return err
		}
		updated, err := tx.Interviews.UpdateVersioned(interview.ID, interview.Version,
			map[string]interface{}{
				"status":    models.InterviewCompleted,
				"recipe_id": recipe.ID,
			})
		if err != nil {
			return err
		}
		if !updated {
			return apperr.ErrConflict
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	slog.Info("interview completed", "interview_id", interview.ID, "recipe_id", recipe.ID)

	final, err := s.store.Interviews.GetByID(interview.ID)
	if err != nil {
		return nil, nil, err
	}
	return recipe, final, nil
}

// Abandon moves an in_progress interview to its other terminal state.
func (s *InterviewService) Abandon(userID, interviewID uuid.UUID) (*models.Interview, error) {
	interview, _, err := s.guard.Interview(userID, interviewID)
	if err != nil {
		return nil, err
	}
	if interview.Terminal() {
		return nil, apperr.ErrInvalidState
	}

	updated, err := s.store.Interviews.UpdateVersioned(interview.ID, interview.Version,
		map[string]interface{}{"status": models.InterviewAbandoned})
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, apperr.ErrConflict
	}

	return s.store.Interviews.GetByID(interview.ID)
}

// validateAnswer checks the submitted value against the question's type and
// required flag. The error carries the question id so the client can
// re-prompt the same question.
func validateAnswer(q models.QuestionSpec, answer interface{}) error {
	if isEmptyAnswer(answer) {
		if q.Required {
			return apperr.Validation(q.ID, "answer is required")
		}
		return nil
	}

	switch q.Type {
	case models.QuestionSingleChoice:
		v, ok := answer.(string)
		if !ok {
			return apperr.Validation(q.ID, "answer must be a string")
		}
		if !containsOption(q.Options, v) {
			return apperr.Validation(q.ID, fmt.Sprintf("%q is not one of the offered options", v))
		}
	case models.QuestionMultipleChoice:
		items, ok := answer.([]interface{})
		if !ok {
			return apperr.Validation(q.ID, "answer must be a list of options")
		}
		for _, item := range items {
			v, ok := item.(string)
			if !ok || !containsOption(q.Options, v) {
				return apperr.Validation(q.ID, "answer contains a value that is not an offered option")
			}
		}
	case models.QuestionNumber:
		switch answer.(type) {
		case float64, int, int64:
		default:
			return apperr.Validation(q.ID, "answer must be a number")
		}
	case models.QuestionText:
		if _, ok := answer.(string); !ok {
			return apperr.Validation(q.ID, "answer must be text")
		}
	}

	return nil
}

func isEmptyAnswer(answer interface{}) bool {
	switch v := answer.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []interface{}:
		return len(v) == 0
	}
	return false
}

func containsOption(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
