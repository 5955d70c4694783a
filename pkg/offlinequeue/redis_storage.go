package offlinequeue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ironnotify/ironnotify-go/pkg/notification"
)

// DefaultRedisKey is the key the queue image is stored under when no key is
// provided.
const DefaultRedisKey = "ironnotify:offline_queue"

// RedisStorage persists the queue image as a single JSON blob under one
// Redis key. Useful for processes without a stable home directory
// (containers, serverless) where FileStorage would not survive restarts.
type RedisStorage struct {
	client *redis.Client
	key    string
}

// NewRedisStorage creates a Redis-backed storage. An empty key selects
// DefaultRedisKey.
func NewRedisStorage(client *redis.Client, key string) *RedisStorage {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisStorage{client: client, key: key}
}

func (s *RedisStorage) Load(ctx context.Context) ([]notification.Payload, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("read queue image from redis: %w", err)
	}

	var payloads []notification.Payload
	if err := json.Unmarshal(data, &payloads); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptImage, err)
	}
	return payloads, nil
}

func (s *RedisStorage) Save(ctx context.Context, payloads []notification.Payload) error {
	if payloads == nil {
		payloads = []notification.Payload{}
	}

	data, err := json.Marshal(payloads)
	if err != nil {
		return fmt.Errorf("marshal queue image: %w", err)
	}

	// SET is atomic on its own, so no temp-then-rename equivalent is needed.
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("write queue image to redis: %w", err)
	}
	return nil
}
