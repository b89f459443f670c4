package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xaosao/xaosao-service/internal/domain/customers"
	"github.com/xaosao/xaosao-service/internal/pkg/config"
	"github.com/xaosao/xaosao-service/internal/pkg/logger"
)

const sessionKeyPrefix = "session:"

type redisSessionStore struct {
	client *redis.Client
	logger logger.Logger
}

// NewRedisSessionStore creates a redis-backed SessionStore and verifies the
// connection.
func NewRedisSessionStore(settings *config.RedisSettings, logger logger.Logger) (SessionStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", settings.Host, settings.Port),
		Password: settings.Password,
		DB:       settings.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisSessionStore{
		client: client,
		logger: logger,
	}, nil
}

func (s *redisSessionStore) Put(ctx context.Context, token, customerID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKeyPrefix+token, customerID, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (s *redisSessionStore) Get(ctx context.Context, token string) (string, error) {
	customerID, err := s.client.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return "", customers.ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to fetch session: %w", err)
	}
	return customerID, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
