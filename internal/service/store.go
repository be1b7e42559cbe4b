package service

import (
	"context"
	"time"
)

// KVStore 令牌吊销与统计缓存所需的最小 KV 能力，由 Redis 实现
type KVStore interface {
	SetWithExpiration(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	GetValue(ctx context.Context, key string) (string, error)
}
