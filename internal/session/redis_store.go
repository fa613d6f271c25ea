package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"go-storefront/internal/config"
	"go-storefront/internal/models"
)

const (
	cartKeyPrefix = "cart:"
	dialTimeout   = 5 * time.Second
)

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	dialCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	if err := client.Ping(dialCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis (ping failed): %w", err)
	}
	return client, nil
}

// NewRedisStore stores carts with the given TTL; zero means no expiry.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisStore) key(sessionID string) string {
	return cartKeyPrefix + sessionID
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (*models.Cart, error) {
	if sessionID == "" {
		return nil, ErrEmptySessionID
	}

	val, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.NewCart(), nil
		}
		return nil, fmt.Errorf("failed to get cart for session %s from redis: %w", sessionID, err)
	}

	cart := models.NewCart()
	if err := json.Unmarshal(val, cart); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart for session %s: %w", sessionID, err)
	}
	return cart, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, cart *models.Cart) error {
	if sessionID == "" {
		return ErrEmptySessionID
	}
	if cart == nil {
		return fmt.Errorf("cannot save nil cart for session %s", sessionID)
	}

	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart for session %s: %w", sessionID, err)
	}

	if err := s.client.Set(ctx, s.key(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart for session %s to redis: %w", sessionID, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart for session %s from redis: %w", sessionID, err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
