package store

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
)

// RedisBackend Redis 持久化后端，一个键一个字符串值
type RedisBackend struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRedisBackend(rdb *redis.Client) *RedisBackend {
	return &RedisBackend{
		rdb: rdb,
		ctx: context.Background(),
	}
}

func (b *RedisBackend) Get(key string) (string, bool, error) {
	v, err := b.rdb.Get(b.ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (b *RedisBackend) Set(key, value string) error {
	return b.rdb.Set(b.ctx, key, value, 0).Err()
}

func (b *RedisBackend) Remove(key string) error {
	return b.rdb.Del(b.ctx, key).Err()
}
