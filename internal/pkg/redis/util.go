package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store 基于 Redis 的简单 KV 存储
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// SetWithExpiration 设置键值对并设置过期时间
func (s *Store) SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return s.rdb.Set(ctx, key, value, expiration).Err()
}

// GetValue 获取字符串类型的值，键不存在时返回空串
func (s *Store) GetValue(ctx context.Context, key string) (string, error) {
	value, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return value, nil
}
