package localstate

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrJamesThe3rd/buxfer/internal/errs"
)

// namespace keeps local state apart from anything else in a shared Redis.
const namespace = "buxfer:"

var _ Store = (*RedisStore)(nil)

type RedisStore struct {
	client *redis.Client
}

// OpenRedis connects to addr and checks the server answers.
func OpenRedis(ctx context.Context, addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return &RedisStore{client: client}, nil
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, namespace+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", errs.ErrNotFound
	}

	if err != nil {
		return "", errs.Store("get local state", err)
	}

	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, namespace+key, value, ttl).Err(); err != nil {
		return errs.Store("set local state", err)
	}

	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, namespace+key).Err(); err != nil {
		return errs.Store("delete local state", err)
	}

	return nil
}

func (s *RedisStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string

	iter := s.client.Scan(ctx, 0, namespace+escapeGlob(prefix)+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), namespace))
	}

	if err := iter.Err(); err != nil {
		return nil, errs.Store("list local state", err)
	}

	// SCAN may return a key more than once.
	slices.Sort(keys)

	return slices.Compact(keys), nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

var globEscaper = strings.NewReplacer(`\`, `\\`, "*", `\*`, "?", `\?`, "[", `\[`, "]", `\]`)

func escapeGlob(s string) string {
	return globEscaper.Replace(s)
}
