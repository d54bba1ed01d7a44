package main

import (
	"context"
	"os"

	"github.com/mylinked/backend/config"
	"github.com/mylinked/backend/internal/client"
	"github.com/mylinked/backend/internal/domain"
	"github.com/mylinked/backend/internal/repository"
	"github.com/mylinked/backend/pkg/api"
	"github.com/mylinked/backend/pkg/authenticator"
	"github.com/mylinked/backend/pkg/logger"
	"github.com/mylinked/backend/pkg/router"
	"github.com/mylinked/backend/pkg/session"
	"github.com/mylinked/backend/pkg/xcontext"
	"github.com/mylinked/backend/pkg/xredis"
	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	ctx context.Context
	app *cli.App

	userRepo          repository.UserRepository
	linkRepo          repository.LinkRepository
	socialConnRepo    repository.SocialConnectionRepository
	oauthStateRepo    repository.OAuthStateRepository
	followRepo        repository.FollowRepository
	referralRepo      repository.ReferralRequestRepository
	collaborationRepo repository.CollaborationRequestRepository
	spotlightRepo     repository.SpotlightRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	emailRepo         repository.EmailRepository

	authDomain          domain.AuthDomain
	userDomain          domain.UserDomain
	linkDomain          domain.LinkDomain
	socialDomain        domain.SocialDomain
	notificationDomain  domain.NotificationDomain
	referralDomain      domain.ReferralDomain
	collaborationDomain domain.CollaborationDomain
	spotlightDomain     domain.SpotlightDomain
	statisticDomain     domain.StatisticDomain
	emailDomain         domain.EmailDomain

	redisClient xredis.Client
	emailCaller client.EmailCaller

	router *router.Router
}

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Name = "mylinked"
	app.Usage = "MyLinked backend services"
	app.Action = cli.ShowAppHelp
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path of the TOML configuration file",
		},
	}
	app.Commands = []*cli.Command{
		{
			Action:      s.startApi,
			Name:        "api",
			Usage:       "Start the API server",
			Category:    "Api",
			Description: `Serves every HTTP endpoint of the application.`,
		},
		{
			Action:      s.startCron,
			Name:        "cron",
			Usage:       "Start the cron worker",
			Category:    "Worker",
			Description: `Runs the periodic jobs: oauth state purge and email sending.`,
		},
		{
			Action:      s.startMigrate,
			Name:        "migrate",
			Usage:       "Apply pending database migrations",
			Category:    "Database",
			Description: `Brings the schema to the latest version and exits.`,
		},
	}

	s.app = app
}

func (s *srv) loadContext(cctx *cli.Context) error {
	cfg, err := config.Load(cctx.String("config"))
	if err != nil {
		return err
	}
	applyEnvOverrides(&cfg)

	s.ctx = context.Background()
	s.ctx = xcontext.WithConfigs(s.ctx, cfg)

	if cfg.Env == "local" {
		s.ctx = xcontext.WithLogger(s.ctx, logger.NewLoggerWithLevel(logger.DEBUG))
	} else {
		s.ctx = xcontext.WithLogger(s.ctx, logger.NewLogger())
	}

	s.ctx = xcontext.WithTokenEngine(s.ctx, authenticator.NewTokenEngine(cfg.Auth.TokenSecret))
	s.ctx = xcontext.WithSessionStore(s.ctx,
		session.NewCookieStore(cfg.Session.Name, []byte(cfg.Session.Secret)))

	return nil
}

func (s *srv) newDatabase() *gorm.DB {
	cfg := xcontext.Configs(s.ctx)
	db, err := gorm.Open(mysql.Open(cfg.Database.ConnectionString()), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	return db
}

func (s *srv) loadRedisClient() {
	var err error
	s.redisClient, err = xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
	s.linkRepo = repository.NewLinkRepository()
	s.socialConnRepo = repository.NewSocialConnectionRepository()
	s.oauthStateRepo = repository.NewOAuthStateRepository()
	s.followRepo = repository.NewFollowRepository()
	s.referralRepo = repository.NewReferralRequestRepository()
	s.collaborationRepo = repository.NewCollaborationRequestRepository()
	s.spotlightRepo = repository.NewSpotlightRepository()
	s.refreshTokenRepo = repository.NewRefreshTokenRepository()
	s.emailRepo = repository.NewEmailRepository()
}

func (s *srv) loadEmailCaller() {
	cfg := xcontext.Configs(s.ctx)
	s.emailCaller = client.NewEmailCaller(api.NewGenerator(cfg.Email.Endpoint), cfg.Email.APIKey)
}

func (s *srv) loadDomains() {
	cfg := xcontext.Configs(s.ctx)

	oidcServices := []authenticator.IOIDCService{}
	if cfg.Auth.Google.ClientID != "" {
		google, err := authenticator.NewOIDCService(s.ctx, cfg.Auth.Google)
		if err != nil {
			panic(err)
		}
		oidcServices = append(oidcServices, google)
	}

	oauth2Services := []authenticator.IOAuth2Service{}
	for _, spec := range authenticator.PlatformSpecs() {
		oauth2Cfg := platformConfig(cfg, spec.Name)
		if oauth2Cfg.ClientID == "" {
			xcontext.Logger(s.ctx).Warnf("Platform %s has no credentials, skipped", spec.Name)
			continue
		}

		oauth2Services = append(oauth2Services,
			authenticator.NewPlatformOAuth2(spec, oauth2Cfg, cfg.ApiServer.Endpoint))
	}

	s.authDomain = domain.NewAuthDomain(s.userRepo, s.refreshTokenRepo, s.emailRepo, oidcServices)
	s.userDomain = domain.NewUserDomain(s.userRepo, s.followRepo)
	s.linkDomain = domain.NewLinkDomain(s.linkRepo, s.userRepo, s.redisClient)
	s.socialDomain = domain.NewSocialDomain(s.socialConnRepo, s.oauthStateRepo, oauth2Services)
	s.notificationDomain = domain.NewNotificationDomain(s.userRepo, s.referralRepo, s.collaborationRepo)
	s.referralDomain = domain.NewReferralDomain(s.referralRepo, s.userRepo, s.linkRepo, s.emailRepo)
	s.collaborationDomain = domain.NewCollaborationDomain(s.collaborationRepo, s.userRepo, s.spotlightRepo)
	s.spotlightDomain = domain.NewSpotlightDomain(s.spotlightRepo, s.userRepo)
	s.statisticDomain = domain.NewStatisticDomain(s.linkRepo, s.followRepo, s.redisClient)
	s.emailDomain = domain.NewEmailDomain(s.emailRepo, s.userRepo)
}

func platformConfig(cfg config.Configs, platform string) config.OAuth2Configs {
	switch platform {
	case "twitter":
		return cfg.Social.Twitter
	case "linkedin":
		return cfg.Social.LinkedIn
	case "instagram":
		return cfg.Social.Instagram
	case "github":
		return cfg.Social.GitHub
	}

	return config.OAuth2Configs{}
}

func applyEnvOverrides(cfg *config.Configs) {
	setIfPresent := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	setIfPresent(&cfg.Env, "ENV")
	setIfPresent(&cfg.ApiServer.Port, "PORT")
	setIfPresent(&cfg.ApiServer.Endpoint, "API_ENDPOINT")
	setIfPresent(&cfg.ApiServer.FrontendEndpoint, "FRONTEND_ENDPOINT")
	setIfPresent(&cfg.Database.Host, "MYSQL_HOST")
	setIfPresent(&cfg.Database.Port, "MYSQL_PORT")
	setIfPresent(&cfg.Database.Database, "MYSQL_DATABASE")
	setIfPresent(&cfg.Database.User, "MYSQL_USER")
	setIfPresent(&cfg.Database.Password, "MYSQL_PASSWORD")
	setIfPresent(&cfg.Auth.TokenSecret, "TOKEN_SECRET")
	setIfPresent(&cfg.Session.Secret, "SESSION_SECRET")
	setIfPresent(&cfg.Auth.Google.ClientID, "GOOGLE_CLIENT_ID")
	setIfPresent(&cfg.Auth.Google.ClientSecret, "GOOGLE_CLIENT_SECRET")
	setIfPresent(&cfg.Social.Twitter.ClientID, "TWITTER_CLIENT_ID")
	setIfPresent(&cfg.Social.Twitter.ClientSecret, "TWITTER_CLIENT_SECRET")
	setIfPresent(&cfg.Social.LinkedIn.ClientID, "LINKEDIN_CLIENT_ID")
	setIfPresent(&cfg.Social.LinkedIn.ClientSecret, "LINKEDIN_CLIENT_SECRET")
	setIfPresent(&cfg.Social.Instagram.ClientID, "INSTAGRAM_CLIENT_ID")
	setIfPresent(&cfg.Social.Instagram.ClientSecret, "INSTAGRAM_CLIENT_SECRET")
	setIfPresent(&cfg.Social.GitHub.ClientID, "GITHUB_CLIENT_ID")
	setIfPresent(&cfg.Social.GitHub.ClientSecret, "GITHUB_CLIENT_SECRET")
	setIfPresent(&cfg.Redis.Addr, "REDIS_ADDR")
	setIfPresent(&cfg.Email.Endpoint, "EMAIL_ENDPOINT")
	setIfPresent(&cfg.Email.APIKey, "EMAIL_API_KEY")
	setIfPresent(&cfg.Email.Sender, "EMAIL_SENDER")
}
