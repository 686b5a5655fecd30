package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"

	domainErrors "github.com/polkiloo/presto/internal/domain/errors"
)

const keyPrefix = "presto:pref:"

type client interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
	Ping(ctx context.Context) *goredis.StatusCmd
	Close() error
}

// Store keeps preferences in Redis string keys.
type Store struct {
	client client
}

// Dial connects to Redis at addr and verifies the connection.
func Dial(ctx context.Context, addr string) (*Store, error) {
	rdb := goredis.NewClient(&goredis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	return &Store{client: rdb}, nil
}

// Get returns the stored value or ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, keyPrefix+key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", domainErrors.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, nil
}

// Set stores value without expiry.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, keyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.client.Close()
}
