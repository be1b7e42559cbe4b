package cron

import (
	"ForumFlare/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine        *cron.Cron
	statsSpec     string
	adminStatsJob *job.AdminStatsJob
}

// NewCronManager statsSpec 为统计刷新周期，如 "@every 1m"
func NewCronManager(statsSpec string, adminStatsJob *job.AdminStatsJob) *Manager {
	return &Manager{
		engine:        cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		statsSpec:     statsSpec,
		adminStatsJob: adminStatsJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.statsSpec, s.adminStatsJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动", "jobs", len(s.engine.Entries()))
	s.engine.Start()
}

// Stop 等待正在执行的任务结束
func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}
