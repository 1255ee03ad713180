package kv

import (
	"context"
	"errors"

	"requisicoes/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "requisicoes:"

// RedisStore keeps values in Redis under the "requisicoes:" namespace, without expiry.
type RedisStore struct {
	client redis.Cmdable
}

var _ interfaces.IKeyValueStore = (*RedisStore)(nil)

func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return raw, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, keyPrefix+key, value, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, keyPrefix+key).Err()
}
