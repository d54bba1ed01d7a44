package cron

import (
	"context"
	"sync"
	"time"

	"github.com/mylinked/backend/pkg/xcontext"
)

type CronJob interface {
	Do(context.Context)
	RunNow() bool
	Next() time.Time
}

// CronJobManager drives every registered job on its own schedule. Each job
// runs in a dedicated goroutine that sleeps until the next due time or
// until the manager is canceled.
type CronJobManager struct {
	mutex sync.Mutex
	wait  sync.WaitGroup
	jobs  []CronJob
	stop  context.CancelFunc
}

func NewCronJobManager() *CronJobManager {
	return &CronJobManager{}
}

func (m *CronJobManager) Register(job CronJob) {
	m.jobs = append(m.jobs, job)
}

// Start blocks until Cancel is called or ctx is done, then waits for the
// running jobs to finish their current pass.
func (m *CronJobManager) Start(ctx context.Context) {
	m.mutex.Lock()
	ctx, m.stop = context.WithCancel(ctx)
	m.mutex.Unlock()

	xcontext.Logger(ctx).Infof("Cron job manager started")

	for _, job := range m.jobs {
		m.wait.Add(1)
		go m.loop(ctx, job)
	}

	m.wait.Wait()
	xcontext.Logger(ctx).Infof("Cron job manager stopped")
}

func (m *CronJobManager) Cancel(ctx context.Context) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.stop == nil {
		xcontext.Logger(ctx).Warnf("Cancel a manager that hasn't started")
		return
	}

	m.stop()
}

func (m *CronJobManager) loop(ctx context.Context, job CronJob) {
	defer m.wait.Done()

	if job.RunNow() {
		m.run(ctx, job)
	}

	for {
		timer := time.NewTimer(time.Until(job.Next()))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			m.run(ctx, job)
		}
	}
}

func (m *CronJobManager) run(ctx context.Context, job CronJob) {
	xcontext.Logger(ctx).Infof("%T is running...", job)
	job.Do(ctx)
	xcontext.Logger(ctx).Infof("%T ok", job)
}
