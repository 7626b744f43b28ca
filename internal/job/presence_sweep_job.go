package job

import (
	log "log/slog"
	"time"
)

// Sweeper 在线连接表
type Sweeper interface {
	Sweep(deadline time.Time) int
	ConnectionCount() int
	UserCount() int
}

// PresenceSweepJob 清理失活连接并记录在线规模
type PresenceSweepJob struct {
	hub        Sweeper
	staleAfter time.Duration
	now        func() time.Time
}

func NewPresenceSweepJob(hub Sweeper, staleAfter time.Duration) *PresenceSweepJob {
	return &PresenceSweepJob{hub: hub, staleAfter: staleAfter, now: time.Now}
}

func (s *PresenceSweepJob) Run() {
	swept := s.hub.Sweep(s.now().Add(-s.staleAfter))
	if swept > 0 {
		log.Info("presence sweep closed stale sessions", "swept", swept)
	}
	log.Debug("presence sweep finished",
		"connections", s.hub.ConnectionCount(),
		"users", s.hub.UserCount(),
	)
}
