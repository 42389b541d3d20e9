// adapters/redis/redis.go
package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Store adapts a Redis instance to the KeyValuePort contract so it can be
// swapped in for the file-backed store. Values are persisted without TTL;
// a missing key reads as "" to match the localStorage semantics.
type Store struct {
	client *redis.Client
	prefix string
}

func NewStore(addr, username, password string, db int, prefix string) *Store {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})
	return &Store{client: client, prefix: prefix}
}

func (s *Store) key(k string) string {
	return s.prefix + k
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return v, err
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, s.key(key), value, 0).Err()
}

func (s *Store) Remove(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.key(key)).Err()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
