package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"koshub/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const sessionKeyPrefix = "session:"

// RedisStore persists sessions in Redis as JSON with a TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a store with the given session lifetime.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Create(auth *models.AuthResponse) (*Session, error) {
	now := time.Now()
	sess := &Session{
		ID:          uuid.NewString(),
		AccessToken: auth.AccessToken,
		ExpiresIn:   auth.ExpiresIn,
		User:        auth.User,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Save(sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *RedisStore) Get(id string) (*Session, error) {
	ctx := context.Background()
	data, err := s.client.Get(ctx, sessionKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	var sess Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &sess, nil
}

func (s *RedisStore) Save(sess *Session) error {
	sess.UpdatedAt = time.Now()
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	ctx := context.Background()
	if err := s.client.Set(ctx, sessionKeyPrefix+sess.ID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(id string) error {
	ctx := context.Background()
	return s.client.Del(ctx, sessionKeyPrefix+id).Err()
}
