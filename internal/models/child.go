package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ThemeGirls = "girls"
	ThemeBoys  = "boys"
)

// Age bounds for a child profile.
const (
	MinChildAge = 3
	MaxChildAge = 18
)

// Child is a cooking profile owned by exactly one parent. Deleting a child
// cascades to its recipes and interviews.
type Child struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string    `gorm:"not null;size:100" json:"name"`
	Age         int       `gorm:"not null" json:"age"`
	Theme       string    `gorm:"not null;size:10" json:"theme"`
	Preferences string    `gorm:"type:text" json:"preferences"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	User        User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (c *Child) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// ValidTheme reports whether theme is one of the supported personalization
// themes.
func ValidTheme(theme string) bool {
	return theme == ThemeGirls || theme == ThemeBoys
}
