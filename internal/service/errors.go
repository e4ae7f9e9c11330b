package service

import "errors"

// Sentinel errors surfaced to the handlers. Handlers map these to inline
// form messages or HTTP statuses; anything else is treated as an internal
// failure, logged in full and rendered as a generic error page.
var (
	ErrInvalidInput       = errors.New("invalid email or empty password")
	ErrWeakPassword       = errors.New("password shorter than 8 characters")
	ErrEmailTaken         = errors.New("account already exists")
	ErrRecaptchaFailed    = errors.New("recaptcha verification failed")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidAddress     = errors.New("invalid account address")
	ErrAlreadySubscribed  = errors.New("account already subscribed")
	ErrInvalidWebhook     = errors.New("invalid webhook url")
)
