package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/littlesous/backend/internal/dto"
	"github.com/littlesous/backend/internal/models"
	"gorm.io/gorm"
)

// SubscriptionService applies RevenueCat webhook events. Each event both
// records a subscription row and refreshes the denormalized
// subscription_type/status fields on the user.
type SubscriptionService struct {
	db *gorm.DB
}

func NewSubscriptionService(db *gorm.DB) *SubscriptionService {
	return &SubscriptionService{db: db}
}

func (s *SubscriptionService) HandleWebhookEvent(event *dto.RevenueCatEvent) error {
	switch event.Type {
	case "INITIAL_PURCHASE", "NON_RENEWING_PURCHASE":
		return s.handlePurchase(event)
	case "RENEWAL":
		return s.handleRenewal(event)
	case "CANCELLATION":
		return s.handleStatusChange(event, models.SubscriptionCanceled)
	case "EXPIRATION":
		return s.handleExpiration(event)
	default:
		return nil
	}
}

func (s *SubscriptionService) handlePurchase(event *dto.RevenueCatEvent) error {
	userID, err := uuid.Parse(event.AppUserID)
	if err != nil {
		return fmt.Errorf("webhook app_user_id is not a user id: %w", err)
	}

	sub := models.Subscription{
		ID:                 uuid.New(),
		UserID:             userID,
		RevenueCatID:       event.AppUserID,
		ProductID:          event.ProductID,
		Status:             models.SubscriptionActive,
		CurrentPeriodStart: msToTime(event.PurchasedAtMs),
		CurrentPeriodEnd:   msToTime(event.ExpirationAtMs),
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sub).Error; err != nil {
			return err
		}
		endsAt := sub.CurrentPeriodEnd
		return tx.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
			"subscription_type":    PlanForProduct(event.ProductID),
			"subscription_status":  models.SubscriptionActive,
			"subscription_ends_at": &endsAt,
		}).Error
	})
}

func (s *SubscriptionService) handleRenewal(event *dto.RevenueCatEvent) error {
	userID, err := uuid.Parse(event.AppUserID)
	if err != nil {
		return fmt.Errorf("webhook app_user_id is not a user id: %w", err)
	}

	var sub models.Subscription
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").First(&sub).Error; err != nil {
		return fmt.Errorf("subscription not found for renewal: %w", err)
	}

	endsAt := msToTime(event.ExpirationAtMs)
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&sub).Updates(map[string]interface{}{
			"status":               models.SubscriptionActive,
			"current_period_start": msToTime(event.PurchasedAtMs),
			"current_period_end":   endsAt,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
			"subscription_status":  models.SubscriptionActive,
			"subscription_ends_at": &endsAt,
		}).Error
	})
}

func (s *SubscriptionService) handleStatusChange(event *dto.RevenueCatEvent, status string) error {
	userID, err := uuid.Parse(event.AppUserID)
	if err != nil {
		return fmt.Errorf("webhook app_user_id is not a user id: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Subscription{}).
			Where("user_id = ?", userID).
			Update("status", status).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", userID).
			Update("subscription_status", status).Error
	})
}

func (s *SubscriptionService) handleExpiration(event *dto.RevenueCatEvent) error {
	userID, err := uuid.Parse(event.AppUserID)
	if err != nil {
		return fmt.Errorf("webhook app_user_id is not a user id: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Subscription{}).
			Where("user_id = ?", userID).
			Update("status", "expired").Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
			"subscription_type":   models.PlanFree,
			"subscription_status": models.SubscriptionInactive,
		}).Error
	})
}

// PlanForProduct maps a store product id to the user-facing plan.
func PlanForProduct(productID string) string {
	p := strings.ToLower(productID)
	switch {
	case strings.Contains(p, "annual"), strings.Contains(p, "yearly"):
		return models.PlanAnnual
	case strings.Contains(p, "monthly"):
		return models.PlanMonthly
	case strings.Contains(p, "recipe"):
		return models.PlanPerRecipe
	default:
		return models.PlanMonthly
	}
}

func msToTime(ms int64) time.Time {
	return time.Unix(ms/1000, (ms%1000)*int64(time.Millisecond))
}
