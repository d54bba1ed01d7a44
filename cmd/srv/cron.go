package main

import (
	"github.com/mylinked/backend/internal/domain/cron"
	"github.com/mylinked/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startCron(cctx *cli.Context) error {
	if err := s.loadContext(cctx); err != nil {
		return err
	}

	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.loadRepos()
	s.loadEmailCaller()

	cronJobManager := cron.NewCronJobManager()
	cronJobManager.Register(cron.NewPurgeOAuthStateCronJob(s.oauthStateRepo))
	cronJobManager.Register(cron.NewSendEmailCronJob(s.emailRepo, s.emailCaller))
	cronJobManager.Start(s.ctx)

	return nil
}
