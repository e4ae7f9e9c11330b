package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookRoundTrip(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, NewAuthService(db, nil), "test@example.com")
	settings := NewSettingsService(db)
	ctx := context.Background()

	webhook, err := settings.GetWebhook(ctx, "test@example.com")
	require.NoError(t, err)
	assert.Empty(t, webhook, "no webhook by default")

	require.NoError(t, settings.SetWebhook(ctx, "test@example.com", "http://mywebhook.com"))

	webhook, err = settings.GetWebhook(ctx, "test@example.com")
	require.NoError(t, err)
	assert.Equal(t, "http://mywebhook.com", webhook)
}

func TestSetWebhookInvalidKeepsPrevious(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, NewAuthService(db, nil), "test@example.com")
	settings := NewSettingsService(db)
	ctx := context.Background()

	require.NoError(t, settings.SetWebhook(ctx, "test@example.com", "http://mywebhook.com"))

	assert.ErrorIs(t, settings.SetWebhook(ctx, "test@example.com", "htt://mywebhook.com"), ErrInvalidWebhook)
	assert.ErrorIs(t, settings.SetWebhook(ctx, "test@example.com", ""), ErrInvalidWebhook)

	webhook, err := settings.GetWebhook(ctx, "test@example.com")
	require.NoError(t, err)
	assert.Equal(t, "http://mywebhook.com", webhook, "previous value is retained")
}
