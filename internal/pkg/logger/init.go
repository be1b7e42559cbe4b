package logger

import (
	"ForumFlare/internal/api/config"
	"io"
	log "log/slog"
	"os"
	"strings"
)

var LogWriter io.Writer = os.Stdout

func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.LevelDebug
	case "warn":
		return log.LevelWarn
	case "error":
		return log.LevelError
	default:
		return log.LevelInfo
	}
}

// InitLogger 初始化全局 slog，配置了 log.file 时同时写入文件
func InitLogger(cfg config.LogConfig) {
	opts := &log.HandlerOptions{Level: parseLevel(cfg.Level)}
	hStdout := log.NewJSONHandler(os.Stdout, opts)

	var finalHandler log.Handler = hStdout
	LogWriter = os.Stdout

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			finalHandler = &TeeHandler{
				handlers: []log.Handler{hStdout, log.NewJSONHandler(f, opts)},
			}
			LogWriter = io.MultiWriter(os.Stdout, f)
		} else {
			log.Warn("Failed to open log file, logging to stdout only", "file", cfg.File, "err", err)
		}
	}

	logger := log.New(&ContextHandler{finalHandler})
	log.SetDefault(logger)
}
