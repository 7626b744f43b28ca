package cron

import (
	"Parley/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine           *cron.Cron
	sweepSpec        string
	presenceSweepJob *job.PresenceSweepJob
}

func NewCronManager(presenceSweepJob *job.PresenceSweepJob, sweepSpec string) *Manager {
	if sweepSpec == "" {
		sweepSpec = "@every 30s"
	}
	return &Manager{
		engine:           cron.New(cron.WithSeconds()),
		sweepSpec:        sweepSpec,
		presenceSweepJob: presenceSweepJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.sweepSpec, cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(s.presenceSweepJob)); err != nil {
		return err
	}
	return nil
}

// Entries 已注册的任务数
func (s *Manager) Entries() int {
	return len(s.engine.Entries())
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}
