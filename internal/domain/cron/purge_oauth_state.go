package cron

import (
	"context"
	"time"

	"github.com/mylinked/backend/internal/repository"
	"github.com/mylinked/backend/pkg/dateutil"
	"github.com/mylinked/backend/pkg/xcontext"
)

// PurgeOAuthStateCronJob sweeps expired handshake rows. Expired states are
// already rejected at lookup time, the sweep only bounds table growth.
type PurgeOAuthStateCronJob struct {
	oauthStateRepo repository.OAuthStateRepository
}

func NewPurgeOAuthStateCronJob(
	oauthStateRepo repository.OAuthStateRepository,
) *PurgeOAuthStateCronJob {
	return &PurgeOAuthStateCronJob{oauthStateRepo: oauthStateRepo}
}

func (job *PurgeOAuthStateCronJob) Do(ctx context.Context) {
	deleted, err := job.oauthStateRepo.DeleteExpired(ctx, time.Now())
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot purge expired oauth states: %v", err)
		return
	}

	if deleted > 0 {
		xcontext.Logger(ctx).Infof("Purged %d expired oauth states", deleted)
	}
}

func (job *PurgeOAuthStateCronJob) RunNow() bool {
	return true
}

func (job *PurgeOAuthStateCronJob) Next() time.Time {
	return dateutil.NextHour(time.Now())
}
