package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewStore(rdb, "test-secret"), mr
}

func TestCreateAndResolve(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, "test@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", email)
}

func TestResolveRefreshesIdleWindow(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, "test@example.com")
	require.NoError(t, err)

	// Burn most of the idle window, then touch the session.
	mr.FastForward(IdleTimeout - time.Minute)
	_, err = store.Resolve(ctx, token)
	require.NoError(t, err)

	// The same advance again would have expired a non-rolling session.
	mr.FastForward(IdleTimeout - time.Minute)
	email, err := store.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", email)
}

func TestResolveExpiredSession(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, "test@example.com")
	require.NoError(t, err)

	mr.FastForward(IdleTimeout + time.Second)
	_, err = store.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestResolveTamperedToken(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, "test@example.com")
	require.NoError(t, err)

	_, err = store.Resolve(ctx, token+"x")
	assert.ErrorIs(t, err, ErrNoSession)

	// A token signed with a different secret must not resolve either.
	other := NewStore(store.rdb, "other-secret")
	foreign, err := other.Create(ctx, "other@example.com")
	require.NoError(t, err)
	_, err = store.Resolve(ctx, foreign)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestDestroyIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, "test@example.com")
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, token))
	_, err = store.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrNoSession)

	// Destroying again, or destroying garbage, is a no-op.
	require.NoError(t, store.Destroy(ctx, token))
	require.NoError(t, store.Destroy(ctx, "not-a-token"))
}
