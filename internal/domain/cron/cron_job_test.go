package cron

import (
	"context"
	"testing"
	"time"

	"github.com/mylinked/backend/pkg/testutil"
)

type tickJob struct {
	runs     chan struct{}
	interval time.Duration
}

func (j *tickJob) Do(context.Context) { j.runs <- struct{}{} }
func (j *tickJob) RunNow() bool       { return true }
func (j *tickJob) Next() time.Time    { return time.Now().Add(j.interval) }

func Test_CronJobManager_runsAndStopsOnCancel(t *testing.T) {
	ctx := testutil.MockContext()

	manager := NewCronJobManager()
	job := &tickJob{runs: make(chan struct{}, 16), interval: 10 * time.Millisecond}
	manager.Register(job)

	done := make(chan struct{})
	go func() {
		manager.Start(ctx)
		close(done)
	}()

	// One immediate pass plus at least one scheduled pass.
	for i := 0; i < 2; i++ {
		select {
		case <-job.runs:
		case <-time.After(time.Second):
			t.Fatal("job did not run")
		}
	}

	manager.Cancel(ctx)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("manager did not stop after cancel")
	}
}

func Test_CronJobManager_cancelBeforeStart(t *testing.T) {
	ctx := testutil.MockContext()

	manager := NewCronJobManager()
	manager.Cancel(ctx)
}
