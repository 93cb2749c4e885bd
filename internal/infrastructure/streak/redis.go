package streak

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"careerbot/backend/internal/domain/chat"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "careerbot:streak:"

// Client is the subset of go-redis used by RedisStore.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore shares streaks between server replicas.
type RedisStore struct {
	client Client
	ttl    time.Duration
}

// NewRedisStore wraps client. Keys expire after ttl of inactivity.
func NewRedisStore(client Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

var _ chat.StreakStore = (*RedisStore)(nil)

// Connect parses a redis:// URL and verifies the server answers.
func Connect(ctx context.Context, rawURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// Load returns the streak for scope, zero when the key is absent.
func (s *RedisStore) Load(ctx context.Context, scope string) (int, error) {
	val, err := s.client.Get(ctx, keyPrefix+scope).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load streak: %w", err)
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("decode streak %q: %w", val, err)
	}
	return n, nil
}

// Store records streak for scope. Zero deletes the key.
func (s *RedisStore) Store(ctx context.Context, scope string, streak int) error {
	key := keyPrefix + scope
	if streak <= 0 {
		if err := s.client.Del(ctx, key).Err(); err != nil {
			return fmt.Errorf("reset streak: %w", err)
		}
		return nil
	}
	if err := s.client.Set(ctx, key, streak, s.ttl).Err(); err != nil {
		return fmt.Errorf("store streak: %w", err)
	}
	return nil
}
