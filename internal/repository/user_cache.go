package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"taskflow-api/internal/domain"
)

// UserCache caches the public fields of users by id.
// Get returns (nil, nil) on a miss. Password hashes are never stored.
type UserCache interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Set(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type cachedUser struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type redisUserCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewUserCache returns a Redis-backed cache, or a no-op cache when client is nil
func NewUserCache(client *redis.Client, ttl time.Duration) UserCache {
	if client == nil {
		return noopUserCache{}
	}
	return &redisUserCache{client: client, ttl: ttl}
}

func userCacheKey(id uuid.UUID) string {
	return "taskflow:user:" + id.String()
}

func (c *redisUserCache) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	data, err := c.client.Get(ctx, userCacheKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cu cachedUser
	if err := json.Unmarshal(data, &cu); err != nil {
		return nil, err
	}
	user := &domain.User{Email: cu.Email, Name: cu.Name}
	user.ID = cu.ID
	user.CreatedAt = cu.CreatedAt
	return user, nil
}

func (c *redisUserCache) Set(ctx context.Context, user *domain.User) error {
	data, err := json.Marshal(cachedUser{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, userCacheKey(user.ID), data, c.ttl).Err()
}

func (c *redisUserCache) Delete(ctx context.Context, id uuid.UUID) error {
	return c.client.Del(ctx, userCacheKey(id)).Err()
}

type noopUserCache struct{}

func (noopUserCache) Get(context.Context, uuid.UUID) (*domain.User, error) { return nil, nil }
func (noopUserCache) Set(context.Context, *domain.User) error              { return nil }
func (noopUserCache) Delete(context.Context, uuid.UUID) error              { return nil }
