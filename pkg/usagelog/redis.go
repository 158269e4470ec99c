package usagelog

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/serenakung/speech-scene-generator/pkg/errors"
)

// keyPrefix namespaces usage-log keys in a shared Redis instance.
const keyPrefix = "scenegen:usagelog:"

// RedisStore appends records to a Redis list, one JSON document per element.
// Suitable when several instances share one log.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a Redis-backed log named name at addr. The
// connection is verified with a ping before the store is returned.
func NewRedisStore(ctx context.Context, addr, name string) (*RedisStore, error) {
	if err := errors.ValidateLogName(name); err != nil {
		return nil, err
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return &RedisStore{client: client, key: keyPrefix + name}, nil
}

// Append pushes one record onto the tail of the list.
func (s *RedisStore) Append(ctx context.Context, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.client.RPush(ctx, s.key, data).Err()
}

// List returns every record in append order.
func (s *RedisStore) List(ctx context.Context) ([]Record, error) {
	lines, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		return nil, err
	}

	recs := make([]Record, 0, len(lines))
	for _, line := range lines {
		var rec Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			continue
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

// Clear deletes the list.
func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
