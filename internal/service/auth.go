package service

import (
	"context"
	"errors"
	"strings"

	"nanotify/internal/domain"
	"nanotify/internal/validate"

	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// RecaptchaVerifier checks a client CAPTCHA response against an external
// verification service. A failed or unreachable verification returns an
// error.
type RecaptchaVerifier interface {
	Verify(ctx context.Context, response string) error
}

// AuthService registers users and verifies credentials. The persistence
// handle and the optional CAPTCHA verifier are passed in explicitly.
type AuthService struct {
	db        *gorm.DB
	recaptcha RecaptchaVerifier // nil disables CAPTCHA verification
}

// NewAuthService returns an AuthService over db. recaptcha may be nil.
func NewAuthService(db *gorm.DB, recaptcha RecaptchaVerifier) *AuthService {
	return &AuthService{db: db, recaptcha: recaptcha}
}

// Register validates the input, hashes the password and persists a new
// user. Emails are stored lowercased so lookups stay case-insensitive.
func (s *AuthService) Register(ctx context.Context, email, password, recaptchaResponse string) error {
	if s.recaptcha != nil {
		// An unreachable verifier counts as failed verification.
		if err := s.recaptcha.Verify(ctx, recaptchaResponse); err != nil {
			return ErrRecaptchaFailed
		}
	}
	if !validate.IsValidEmail(email) || password == "" {
		return ErrInvalidInput
	}
	if !validate.IsValidPassword(password) {
		return ErrWeakPassword
	}
	email = strings.ToLower(email)

	// Pre-check for a friendly message; the primary key still backstops
	// the race between concurrent registrations.
	var existing domain.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := domain.User{Email: email, Password: string(hash)}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return err
	}
	logrus.WithFields(logrus.Fields{
		"email": email, // Registered identity
	}).Info("User registered")
	return nil
}

// Authenticate verifies email/password and returns the canonical
// (lowercased) email on success. Lookup failure and hash mismatch are
// indistinguishable to the caller.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(email)
	var user domain.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return user.Email, nil
}
