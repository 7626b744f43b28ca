package cron

import (
	"fmt"
	log "log/slog"
)

// InitCron 注册并启动所有定时任务
func InitCron(mgr *Manager) error {
	if err := mgr.RegisterJobs(); err != nil {
		return fmt.Errorf("register cron jobs: %w", err)
	}
	mgr.Start()
	log.Info("Cron Jobs started", "entries", mgr.Entries(), "sweep", mgr.sweepSpec)
	return nil
}
