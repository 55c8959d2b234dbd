package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"apt/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store using Redis. Expiry is delegated to Redis TTLs;
// a Get re-arms the TTL so active sessions never expire.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a RedisStore with the given key prefix and sliding TTL.
func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisStore) key(token string) string {
	return fmt.Sprintf("%s:%s", s.prefix, token)
}

// Create persists a new session and returns it with a fresh opaque token.
func (s *RedisStore) Create(ctx context.Context, principal models.Principal) (*Session, error) {
	now := time.Now()
	sess := &Session{
		Token:     uuid.NewString(),
		Principal: principal,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sess.Token), data, s.ttl).Err(); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get retrieves a session by token and slides its expiry forward.
func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	data, err := s.client.Get(ctx, s.key(token)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	// Sliding expiry: being seen keeps the session alive.
	sess.ExpiresAt = time.Now().Add(s.ttl)
	if updated, err := json.Marshal(&sess); err == nil {
		if err := s.client.Set(ctx, s.key(token), updated, s.ttl).Err(); err != nil {
			return nil, err
		}
	}

	return &sess, nil
}

// UpdateLoom rewrites the cached loom on a live session. The TTL is re-armed
// since the owner is clearly active.
func (s *RedisStore) UpdateLoom(ctx context.Context, token string, loom models.Loom) error {
	sess, err := s.Get(ctx, token)
	if err != nil {
		return err
	}
	sess.Principal.Loom = loom

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return s.client.Set(ctx, s.key(token), data, s.ttl).Err()
}

// Revoke deletes the session. Revoking an unknown token is not an error.
func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.key(token)).Err()
}
