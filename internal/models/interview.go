package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	InterviewInProgress = "in_progress"
	InterviewCompleted  = "completed"
	InterviewAbandoned  = "abandoned"
)

type QuestionType string

const (
	QuestionSingleChoice   QuestionType = "single_choice"
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionText           QuestionType = "text"
	QuestionNumber         QuestionType = "number"
)

// QuestionSpec is one step of the interview. IDs are stable strings produced
// by the generator ("meal_type", "skill_level", ...).
type QuestionSpec struct {
	ID       string       `json:"id"`
	Question string       `json:"question"`
	Type     QuestionType `json:"type"`
	Options  []string     `json:"options,omitempty"`
	Required bool         `json:"required"`
}

// Conversation is the interview's full persisted state. The cursor is the
// zero-based index of the next unanswered question, so the current question
// and overall progress are always recoverable from this record alone.
type Conversation struct {
	Questions []QuestionSpec         `json:"questions"`
	Answers   map[string]interface{} `json:"answers"`
	Cursor    int                    `json:"cursor"`
}

// CurrentQuestion returns the question the cursor points at, or false once
// every question has been answered.
func (c *Conversation) CurrentQuestion() (QuestionSpec, bool) {
	if c.Cursor < 0 || c.Cursor >= len(c.Questions) {
		return QuestionSpec{}, false
	}
	return c.Questions[c.Cursor], true
}

// Answered reports whether every question has an answer.
func (c *Conversation) Answered() bool {
	return c.Cursor >= len(c.Questions)
}

// StringAnswer returns the answer for id as a string, or fallback when the
// answer is absent or not a string.
func (c *Conversation) StringAnswer(id, fallback string) string {
	if v, ok := c.Answers[id].(string); ok && v != "" {
		return v
	}
	return fallback
}

// Interview is a linear Q&A session tied to one child. The version column
// guards concurrent answer submissions: updates are conditional on the
// version read, so two writers cannot both advance the same cursor.
type Interview struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	ChildID      uuid.UUID    `gorm:"type:uuid;not null;index" json:"child_id"`
	Status       string       `gorm:"size:20;not null;default:'in_progress'" json:"status"`
	RecipeID     *uuid.UUID   `gorm:"type:uuid" json:"recipe_id,omitempty"`
	Conversation Conversation `gorm:"type:jsonb;serializer:json" json:"conversation"`
	Version      int          `gorm:"not null;default:1" json:"-"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	Child        Child        `gorm:"foreignKey:ChildID;constraint:OnDelete:CASCADE" json:"-"`
	Recipe       *Recipe      `gorm:"foreignKey:RecipeID;constraint:OnDelete:SET NULL" json:"-"`
}

func (i *Interview) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// Terminal reports whether the interview can no longer accept answers.
func (i *Interview) Terminal() bool {
	return i.Status == InterviewCompleted || i.Status == InterviewAbandoned
}
