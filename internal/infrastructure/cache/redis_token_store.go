package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/memberconnect/backend/internal/domain/shared"
)

const resetTokenKeyPrefix = "pwreset:"

// RedisResetTokenStore implements shared.ResetTokenStore using Redis.
// Suitable for distributed deployments where multiple instances share
// reset token state. Consume uses GETDEL so a token can only be consumed
// once even when confirm calls race across instances.
type RedisResetTokenStore struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisResetTokenStore creates a new Redis-based reset token store
func NewRedisResetTokenStore(cfg RedisConfig) (*RedisResetTokenStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisResetTokenStore{
		client:    client,
		keyPrefix: resetTokenKeyPrefix,
	}, nil
}

// NewRedisResetTokenStoreWithClient creates a store with an existing Redis
// client. Useful for testing or when sharing a client across components.
func NewRedisResetTokenStoreWithClient(client *redis.Client, keyPrefix string) *RedisResetTokenStore {
	if keyPrefix == "" {
		keyPrefix = resetTokenKeyPrefix
	}
	return &RedisResetTokenStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Put stores token -> userID with the given TTL
func (s *RedisResetTokenStore) Put(ctx context.Context, token string, userID uuid.UUID, ttl time.Duration) error {
	key := s.keyPrefix + token

	if err := s.client.Set(ctx, key, userID.String(), ttl).Err(); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	return nil
}

// Consume returns the user id for the token and deletes it atomically
func (s *RedisResetTokenStore) Consume(ctx context.Context, token string) (uuid.UUID, bool, error) {
	key := s.keyPrefix + token

	value, err := s.client.GetDel(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("failed to consume reset token: %w", err)
	}

	userID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("malformed reset token entry: %w", err)
	}

	return userID, true, nil
}

// Close closes the Redis client
func (s *RedisResetTokenStore) Close() error {
	return s.client.Close()
}

// GetClient returns the underlying Redis client (for testing/monitoring)
func (s *RedisResetTokenStore) GetClient() *redis.Client {
	return s.client
}

// Ensure RedisResetTokenStore implements ResetTokenStore
var _ shared.ResetTokenStore = (*RedisResetTokenStore)(nil)
