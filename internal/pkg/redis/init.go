package redis

import (
	"ForumFlare/internal/api/config"
	"ForumFlare/internal/pkg/logger"
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/redis/go-redis/v9/maintnotifications"
)

// InitRedis 初始化 Redis 客户端连接
func InitRedis(cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,

		MaintNotificationsConfig: &maintnotifications.Config{
			Mode: maintnotifications.ModeDisabled,
		},
	})
	rdb.AddHook(logger.NewRedisLogger())

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return rdb, nil
}
