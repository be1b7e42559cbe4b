package logger

import (
	"context"
	"fmt"
	log "log/slog"
	"time"

	"go.mongodb.org/mongo-driver/event"
)

const mongoSlowThreshold = 200 * time.Millisecond

// 心跳与握手命令不记录
var mongoSilentCommands = map[string]struct{}{
	"hello":       {},
	"isMaster":    {},
	"ismaster":    {},
	"ping":        {},
	"endSessions": {},
}

func NewMongoMonitor() *event.CommandMonitor {
	return &event.CommandMonitor{
		Started: func(ctx context.Context, evt *event.CommandStartedEvent) {
			if _, ok := mongoSilentCommands[evt.CommandName]; ok {
				return
			}
			cmdStr := evt.Command.String()
			if len(cmdStr) > 1000 {
				cmdStr = cmdStr[:1000] + "...[truncated]"
			}

			log.DebugContext(ctx, "MongoDB Started",
				log.String("command", evt.CommandName),
				log.String("database", evt.DatabaseName),
				log.String("request_id", fmt.Sprintf("%d", evt.RequestID)),
				log.String("cmd_detail", cmdStr),
			)
		},
		Succeeded: func(ctx context.Context, evt *event.CommandSucceededEvent) {
			if _, ok := mongoSilentCommands[evt.CommandName]; ok {
				return
			}
			fields := []any{
				log.String("command", evt.CommandName),
				log.Duration("latency", evt.Duration),
				log.String("request_id", fmt.Sprintf("%d", evt.RequestID)),
			}

			if evt.Duration > mongoSlowThreshold {
				log.WarnContext(ctx, "MongoDB Slow", fields...)
			} else {
				log.InfoContext(ctx, "MongoDB Success", fields...)
			}
		},
		Failed: func(ctx context.Context, evt *event.CommandFailedEvent) {
			log.ErrorContext(ctx, "MongoDB Error",
				log.String("command", evt.CommandName),
				log.Duration("latency", evt.Duration),
				log.String("request_id", fmt.Sprintf("%d", evt.RequestID)),
				log.Any("err", evt.Failure),
			)
		},
	}
}
