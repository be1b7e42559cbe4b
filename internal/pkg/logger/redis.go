package logger

import (
	"context"
	"errors"
	log "log/slog"
	"net"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisSlowThreshold = 100 * time.Millisecond

type RedisLoggerHook struct{}

func NewRedisLogger() *RedisLoggerHook {
	return &RedisLoggerHook{}
}

// redisArgs 只保留命令与 key，值可能包含令牌签名或统计快照
func redisArgs(cmd redis.Cmder) string {
	name := cmd.Name()
	if name == "auth" || name == "hello" {
		return "[PROTECTED]"
	}
	args := cmd.Args()
	if len(args) > 2 {
		args = args[:2]
	}
	parts := make([]string, 0, len(args))
	for _, a := range args {
		if s, ok := a.(string); ok {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

func (s *RedisLoggerHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		start := time.Now()
		conn, err := next(ctx, network, addr)
		if err != nil {
			log.ErrorContext(ctx, "Redis Dial Error",
				log.String("addr", addr),
				log.Duration("latency", time.Since(start)),
				log.Any("err", err),
			)
		}
		return conn, err
	}
}

func (s *RedisLoggerHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		elapsed := time.Since(start)

		fields := []any{
			log.String("command", cmd.Name()),
			log.String("args", redisArgs(cmd)),
			log.Duration("latency", elapsed),
		}

		switch {
		case err != nil && !errors.Is(err, redis.Nil):
			if cmd.Name() == "client" && strings.Contains(err.Error(), "setinfo") {
				return err
			}
			log.ErrorContext(ctx, "Redis Error", append(fields, log.Any("err", err))...)
		case elapsed > redisSlowThreshold:
			log.WarnContext(ctx, "Redis Slow", fields...)
		}

		return err
	}
}

func (s *RedisLoggerHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		if err != nil {
			log.ErrorContext(ctx, "Redis Pipeline Error",
				log.Int("cmd_count", len(cmds)),
				log.Duration("latency", time.Since(start)),
				log.Any("err", err))
		}
		return err
	}
}
