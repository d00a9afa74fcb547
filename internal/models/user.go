package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subscription plans mirror the store products: recurring plans plus a
// one-off per-recipe purchase.
const (
	PlanFree      = "free"
	PlanMonthly   = "monthly"
	PlanAnnual    = "annual"
	PlanPerRecipe = "per_recipe"
)

const (
	SubscriptionActive   = "active"
	SubscriptionInactive = "inactive"
	SubscriptionCanceled = "canceled"
)

// User is a parent account. Children, recipes and interviews all hang off it.
type User struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email              string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password           string         `gorm:"not null" json:"-"`
	FirstName          string         `gorm:"size:100" json:"first_name"`
	LastName           string         `gorm:"size:100" json:"last_name"`
	SubscriptionType   string         `gorm:"size:20;default:'free'" json:"subscription_type"`
	SubscriptionStatus string         `gorm:"size:20;default:'inactive'" json:"subscription_status"`
	SubscriptionEndsAt *time.Time     `json:"subscription_ends_at,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
