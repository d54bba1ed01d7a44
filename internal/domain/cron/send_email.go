package cron

import (
	"context"
	"time"

	"github.com/mylinked/backend/internal/client"
	"github.com/mylinked/backend/internal/repository"
	"github.com/mylinked/backend/pkg/xcontext"
)

const sendEmailBatchSize = 50

// SendEmailCronJob drains the queued email log through the mail provider.
// Each message is marked sent or failed individually, so one bad recipient
// does not block the batch.
type SendEmailCronJob struct {
	emailRepo   repository.EmailRepository
	emailCaller client.EmailCaller
}

func NewSendEmailCronJob(
	emailRepo repository.EmailRepository,
	emailCaller client.EmailCaller,
) *SendEmailCronJob {
	return &SendEmailCronJob{
		emailRepo:   emailRepo,
		emailCaller: emailCaller,
	}
}

func (job *SendEmailCronJob) Do(ctx context.Context) {
	logs, err := job.emailRepo.GetQueuedLogs(ctx, sendEmailBatchSize)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get queued emails: %v", err)
		return
	}

	sender := xcontext.Configs(ctx).Email.Sender
	for i := range logs {
		template, err := job.emailRepo.GetTemplateByID(ctx, logs[i].TemplateID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot resolve template: %v", err)
			continue
		}

		err = job.emailCaller.Send(ctx, sender, logs[i].Recipient, template.Subject, template.HTMLBody)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot send email to %s: %v", logs[i].Recipient, err)
			if err := job.emailRepo.MarkFailed(ctx, logs[i].ID, err.Error()); err != nil {
				xcontext.Logger(ctx).Errorf("Cannot mark email as failed: %v", err)
			}
			continue
		}

		if err := job.emailRepo.MarkSent(ctx, logs[i].ID, time.Now()); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot mark email as sent: %v", err)
		}
	}
}

func (job *SendEmailCronJob) RunNow() bool {
	return false
}

func (job *SendEmailCronJob) Next() time.Time {
	return time.Now().Add(5 * time.Minute)
}
