package session

import (
	"context"
	"testing"
	"time"

	"apt/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client, "session", ttl), mr
}

func TestRedisStore_CreateAndGet(t *testing.T) {
	store, _ := setupStore(t, time.Hour)
	ctx := context.Background()

	principal := models.Principal{UserID: 1, Username: "alice", Loom: models.LoomStudy}
	sess, err := store.Create(ctx, principal)
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)

	got, err := store.Get(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, principal, got.Principal)
}

func TestRedisStore_TokensAreUnique(t *testing.T) {
	store, _ := setupStore(t, time.Hour)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		sess, err := store.Create(ctx, models.Principal{UserID: 1, Username: "alice"})
		require.NoError(t, err)
		assert.False(t, seen[sess.Token])
		seen[sess.Token] = true
	}
}

func TestRedisStore_Get_UnknownToken(t *testing.T) {
	store, _ := setupStore(t, time.Hour)

	_, err := store.Get(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_SlidingExpiry(t *testing.T) {
	store, mr := setupStore(t, time.Hour)
	ctx := context.Background()

	sess, err := store.Create(ctx, models.Principal{UserID: 1, Username: "alice"})
	require.NoError(t, err)

	// Most of the lifetime passes, then the session is used.
	mr.FastForward(45 * time.Minute)
	_, err = store.Get(ctx, sess.Token)
	require.NoError(t, err)

	// Without the slide this would be past the original expiry.
	mr.FastForward(45 * time.Minute)
	got, err := store.Get(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Principal.Username)
}

func TestRedisStore_IdleSessionExpires(t *testing.T) {
	store, mr := setupStore(t, time.Hour)
	ctx := context.Background()

	sess, err := store.Create(ctx, models.Principal{UserID: 1, Username: "alice"})
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	_, err = store.Get(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_UpdateLoom(t *testing.T) {
	store, _ := setupStore(t, time.Hour)
	ctx := context.Background()

	sess, err := store.Create(ctx, models.Principal{UserID: 1, Username: "alice", Loom: models.LoomNone})
	require.NoError(t, err)

	require.NoError(t, store.UpdateLoom(ctx, sess.Token, models.LoomChill))

	got, err := store.Get(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, models.LoomChill, got.Principal.Loom)
}

func TestRedisStore_Revoke(t *testing.T) {
	store, _ := setupStore(t, time.Hour)
	ctx := context.Background()

	sess, err := store.Create(ctx, models.Principal{UserID: 1, Username: "alice"})
	require.NoError(t, err)

	require.NoError(t, store.Revoke(ctx, sess.Token))

	_, err = store.Get(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrNotFound)

	// Revoking again is harmless.
	assert.NoError(t, store.Revoke(ctx, sess.Token))
}
