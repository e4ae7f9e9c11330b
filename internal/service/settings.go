package service

import (
	"context"
	"strings"

	"nanotify/internal/domain"
	"nanotify/internal/validate"

	"gorm.io/gorm" // GORM ORM library
)

// SettingsService reads and updates per-user settings. Today that is the
// notification webhook only.
type SettingsService struct {
	db *gorm.DB
}

// NewSettingsService returns a SettingsService over db.
func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// GetWebhook returns the owner's stored webhook, empty if none is set.
func (s *SettingsService) GetWebhook(ctx context.Context, ownerEmail string) (string, error) {
	var user domain.User
	err := s.db.WithContext(ctx).Where("email = ?", strings.ToLower(ownerEmail)).First(&user).Error
	if err != nil {
		return "", err
	}
	return user.Webhook, nil
}

// SetWebhook validates and stores the owner's webhook. Existing
// subscriptions keep their snapshotted webhook values.
func (s *SettingsService) SetWebhook(ctx context.Context, ownerEmail, url string) error {
	if !validate.IsValidWebhook(url) {
		return ErrInvalidWebhook
	}
	return s.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("email = ?", strings.ToLower(ownerEmail)).
		Update("webhook", url).Error
}
