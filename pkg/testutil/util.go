package testutil

import (
	"context"
	"time"

	"github.com/mylinked/backend/config"
	"github.com/mylinked/backend/internal/entity"
	"github.com/mylinked/backend/pkg/authenticator"
	"github.com/mylinked/backend/pkg/logger"
	"github.com/mylinked/backend/pkg/session"
	"github.com/mylinked/backend/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	// Every pooled connection of the sqlite driver gets its own in-memory
	// database, so the pool must stay at a single connection.
	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	cfg := config.Configs{
		ApiServer: config.ServerConfigs{
			Endpoint:         "https://api.mylinked.test",
			FrontendEndpoint: "https://mylinked.test",
			MaxLimit:         50,
			DefaultLimit:     10,
		},
		Auth: config.AuthConfigs{
			TokenSecret: "secret",
			AccessToken: config.TokenConfigs{
				Name:       "access_token",
				Expiration: time.Minute,
			},
			RefreshToken: config.TokenConfigs{
				Name:       "refresh_token",
				Expiration: time.Minute,
			},
			Google: config.OIDCConfigs{Name: "google"},
		},
		Session: config.SessionConfigs{
			Secret: "session-secret",
			Name:   "mylinked_session",
		},
		Social: config.SocialConfigs{
			StateExpiration: time.Hour,
		},
		Notif: config.NotificationCfgs{
			NewAccountWindow: 7 * 24 * time.Hour,
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLoggerWithLevel(logger.SILENCE))
	ctx = xcontext.WithTokenEngine(ctx, authenticator.NewTokenEngine(cfg.Auth.TokenSecret))
	ctx = xcontext.WithSessionStore(ctx,
		session.NewCookieStore(cfg.Session.Name, []byte(cfg.Session.Secret)))
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}

func MockContextWithUserID(userID string) context.Context {
	return xcontext.WithRequestUserID(MockContext(), userID)
}
