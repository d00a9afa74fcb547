package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Printable card templates.
const (
	TemplateClassic = "classic"
	TemplateModern  = "modern"
	TemplateFun     = "fun"
)

type Ingredient struct {
	Item   string `json:"item"`
	Amount string `json:"amount"`
	Notes  string `json:"notes,omitempty"`
}

type InstructionStep struct {
	Step        int    `json:"step"`
	Instruction string `json:"instruction"`
	Tip         string `json:"tip,omitempty"`
}

// Recipe is only ever created as the result of a completed interview. After
// creation the mutable parts are the favorite/printed flags, the memory note
// and the card template.
type Recipe struct {
	ID           uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	ChildID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"child_id"`
	Title        string            `gorm:"not null;size:255" json:"title"`
	Description  string            `gorm:"type:text" json:"description"`
	Ingredients  []Ingredient      `gorm:"type:jsonb;serializer:json" json:"ingredients"`
	Instructions []InstructionStep `gorm:"type:jsonb;serializer:json" json:"instructions"`
	CookingTime  int               `json:"cooking_time"`
	Difficulty   string            `gorm:"not null;size:20" json:"difficulty"`
	Category     string            `gorm:"not null;size:50" json:"category"`
	AgeWhenMade  int               `gorm:"not null" json:"age_when_made"`
	ChildMemory  string            `gorm:"type:text" json:"child_memory"`
	TemplateType string            `gorm:"size:20;default:'classic'" json:"template_type"`
	ImageURL     string            `gorm:"type:text" json:"image_url"`
	IsFavorite   bool              `gorm:"default:false" json:"is_favorite"`
	IsPrinted    bool              `gorm:"default:false" json:"is_printed"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	Child        Child             `gorm:"foreignKey:ChildID;constraint:OnDelete:CASCADE" json:"-"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func ValidTemplate(t string) bool {
	return t == TemplateClassic || t == TemplateModern || t == TemplateFun
}
