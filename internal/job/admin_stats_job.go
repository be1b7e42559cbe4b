package job

import (
	"ForumFlare/internal/pkg/logger"
	"ForumFlare/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

const adminStatsJobTimeout = 30 * time.Second

// AdminStatsJob 定时刷新管理员统计缓存
type AdminStatsJob struct {
	statsSvc service.AdminStatsService
}

func NewAdminStatsJob(statsSvc service.AdminStatsService) *AdminStatsJob {
	return &AdminStatsJob{
		statsSvc: statsSvc,
	}
}

func (s *AdminStatsJob) Run() {
	traceID := "job-admin-stats-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)
	ctx, cancel := context.WithTimeout(ctx, adminStatsJobTimeout)
	defer cancel()

	stats, err := s.statsSvc.RefreshStats(ctx)
	if err != nil {
		log.ErrorContext(ctx, "refresh admin stats error", "err", err)
		return
	}
	log.DebugContext(ctx, "admin stats refreshed", "users", stats.Users, "posts", stats.Posts)
}
