package service

import (
	"context"
	"errors"
	"strings"

	"nanotify/internal/domain"
	"nanotify/internal/validate"

	"github.com/google/uuid"     // Subscription id generation
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// ActionDelete is the form action value that turns the dual-purpose
// subscribe submission into an unsubscribe. Any other value means add.
const ActionDelete = "delete"

// SubscriptionService manages the per-user watch list and the ownerless
// mobile subscriptions.
type SubscriptionService struct {
	db *gorm.DB
}

// NewSubscriptionService returns a SubscriptionService over db.
func NewSubscriptionService(db *gorm.DB) *SubscriptionService {
	return &SubscriptionService{db: db}
}

// ListFor returns the owner's subscriptions in insertion order.
func (s *SubscriptionService) ListFor(ctx context.Context, ownerEmail string) ([]domain.Subscription, error) {
	var subs []domain.Subscription
	err := s.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(ownerEmail)).
		Order("created_at asc").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

// Add subscribes the owner to address. Adding an address the owner already
// watches is a no-op. The owner's current webhook is snapshotted onto the
// new row; later settings changes do not touch existing rows.
func (s *SubscriptionService) Add(ctx context.Context, ownerEmail, address string) error {
	if !validate.IsValidAddress(address) {
		return ErrInvalidAddress
	}
	ownerEmail = strings.ToLower(ownerEmail)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.Subscription
		err := tx.Where("email = ? AND account = ?", ownerEmail, address).First(&existing).Error
		if err == nil {
			return nil // Already subscribed, nothing to create
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		var user domain.User
		if err := tx.Where("email = ?", ownerEmail).First(&user).Error; err != nil &&
			!errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		sub := domain.Subscription{
			ID:      uuid.NewString(), // Opaque unique id
			Email:   ownerEmail,       // Owner reference
			Account: address,          // Watched address
			Webhook: user.Webhook,     // Snapshot of the owner's webhook
		}
		if err := tx.Create(&sub).Error; err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"email":   ownerEmail, // Owner
			"account": address,    // Watched address
		}).Info("Subscription created")
		return nil
	})
}

// Remove deletes every subscription the owner holds for address. Removing
// an address that is not subscribed is a no-op.
func (s *SubscriptionService) Remove(ctx context.Context, ownerEmail, address string) error {
	return s.db.WithContext(ctx).
		Where("email = ? AND account = ?", strings.ToLower(ownerEmail), address).
		Delete(&domain.Subscription{}).Error
}

// SubscribeOrUnsubscribe dispatches the dual-purpose form submission:
// action "delete" removes, anything else adds.
func (s *SubscriptionService) SubscribeOrUnsubscribe(ctx context.Context, ownerEmail, address, action string) error {
	if action == ActionDelete {
		return s.Remove(ctx, ownerEmail, address)
	}
	return s.Add(ctx, ownerEmail, address)
}

// MobileAdd creates an ownerless subscription for the mobile endpoint.
// Uniqueness here is global on the address alone, independent of owner.
func (s *SubscriptionService) MobileAdd(ctx context.Context, address string) error {
	if !validate.IsValidAddress(address) {
		return ErrInvalidAddress
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.Subscription
		err := tx.Where("account = ?", address).First(&existing).Error
		if err == nil {
			return ErrAlreadySubscribed
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		sub := domain.Subscription{
			ID:      uuid.NewString(), // Opaque unique id
			Account: address,          // Watched address, no owner
		}
		if err := tx.Create(&sub).Error; err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"account": address, // Watched address
		}).Info("Mobile subscription created")
		return nil
	})
}
