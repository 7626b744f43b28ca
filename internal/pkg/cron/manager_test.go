package cron

import (
	"Parley/internal/job"
	"Parley/internal/pkg/realtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestManager_RegisterJobs(t *testing.T) {
	req := require.New(t)
	sweep := job.NewPresenceSweepJob(realtime.NewHub(), time.Minute)

	mgr := NewCronManager(sweep, "")
	req.NoError(InitCron(mgr))
	req.Equal(1, mgr.Entries())
	mgr.Stop()

	bad := NewCronManager(sweep, "not a spec")
	req.Error(bad.RegisterJobs())
}
