package main

import (
	"fmt"
	"net/http"

	"github.com/mylinked/backend/internal/middleware"
	"github.com/mylinked/backend/pkg/router"
	"github.com/mylinked/backend/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(cctx *cli.Context) error {
	if err := s.loadContext(cctx); err != nil {
		return err
	}

	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.loadRedisClient()
	s.loadRepos()
	s.loadEmailCaller()
	s.loadDomains()
	s.loadRouter()

	cfg := xcontext.Configs(s.ctx).ApiServer
	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler: s.router.Handler(),
	}

	xcontext.Logger(s.ctx).Infof("Starting api server on port %s", cfg.Port)
	if cfg.Cert != "" && cfg.Key != "" {
		return httpServer.ListenAndServeTLS(cfg.Cert, cfg.Key)
	}

	return httpServer.ListenAndServe()
}

func (s *srv) loadRouter() {
	s.router = router.New(s.ctx)
	s.router.Before(middleware.ParseToken())
	s.router.AddCloser(router.HandleResponse())
	s.router.AddCloser(middleware.Logger())

	// Auth API.
	authRouter := s.router.Branch()
	authRouter.After(middleware.HandleSetCookie())
	{
		router.POST(authRouter, "/auth/register", s.authDomain.Register)
		router.POST(authRouter, "/auth/login", s.authDomain.Login)
		router.POST(authRouter, "/auth/oauth2/verify", s.authDomain.VerifyOAuth2)
		router.POST(authRouter, "/auth/refresh", s.authDomain.Refresh)
	}

	// Social connect/callback run as browser redirects, the state token
	// is echoed through the session.
	socialRouter := s.router.Branch()
	socialRouter.After(middleware.HandleSaveSession())
	socialRouter.After(middleware.HandleRedirect())
	{
		connectRouter := socialRouter.Branch()
		connectRouter.Before(middleware.Authenticate())
		router.GET(connectRouter, "/social/connect", s.socialDomain.Connect)

		router.GET(socialRouter, "/social/callback", s.socialDomain.Callback)
	}

	// These APIs need authentication.
	authedRouter := s.router.Branch()
	authedRouter.Before(middleware.Authenticate())
	{
		router.POST(authedRouter, "/auth/logout", s.authDomain.Logout)

		// User API.
		router.GET(authedRouter, "/getMe", s.userDomain.GetMe)
		router.POST(authedRouter, "/updateUser", s.userDomain.Update)
		router.POST(authedRouter, "/follow", s.userDomain.Follow)
		router.POST(authedRouter, "/unfollow", s.userDomain.Unfollow)
		router.GET(authedRouter, "/getFollowers", s.userDomain.GetFollowers)
		router.GET(authedRouter, "/getFollowing", s.userDomain.GetFollowing)

		// Link API.
		router.POST(authedRouter, "/createLink", s.linkDomain.Create)
		router.POST(authedRouter, "/updateLink", s.linkDomain.Update)
		router.POST(authedRouter, "/deleteLink", s.linkDomain.Delete)
		router.POST(authedRouter, "/reorderLinks", s.linkDomain.Reorder)
		router.POST(authedRouter, "/setFeaturedLink", s.linkDomain.SetFeatured)

		// Social connection API.
		router.GET(authedRouter, "/social/connections", s.socialDomain.GetConnections)
		router.DELETE(authedRouter, "/social/disconnect", s.socialDomain.Disconnect)

		// Notification API.
		router.GET(authedRouter, "/getNotifications", s.notificationDomain.Get)

		// Referral and collaboration review API.
		router.GET(authedRouter, "/getReferralRequests", s.referralDomain.Get)
		router.POST(authedRouter, "/reviewReferralRequest", s.referralDomain.Review)
		router.GET(authedRouter, "/getCollaborationRequests", s.collaborationDomain.Get)
		router.POST(authedRouter, "/reviewCollaborationRequest", s.collaborationDomain.Review)

		// Spotlight API.
		router.POST(authedRouter, "/createSpotlightProject", s.spotlightDomain.CreateProject)
		router.POST(authedRouter, "/updateSpotlightProject", s.spotlightDomain.UpdateProject)
		router.POST(authedRouter, "/pinSpotlightProject", s.spotlightDomain.PinProject)
		router.POST(authedRouter, "/deleteSpotlightProject", s.spotlightDomain.DeleteProject)
		router.POST(authedRouter, "/addSpotlightContributor", s.spotlightDomain.AddContributor)
		router.POST(authedRouter, "/removeSpotlightContributor", s.spotlightDomain.RemoveContributor)

		// Statistic API.
		router.GET(authedRouter, "/getProfileStats", s.statisticDomain.GetProfileStats)
		router.GET(authedRouter, "/getLinkLeaderboard", s.statisticDomain.GetLinkLeaderboard)

		// Email template API, admin only.
		router.POST(authedRouter, "/upsertEmailTemplate", s.emailDomain.UpsertTemplate)
	}

	// Public API.
	router.GET(s.router, "/getUser", s.userDomain.GetUser)
	router.GET(s.router, "/getLinks", s.linkDomain.Get)
	router.POST(s.router, "/clickLink", s.linkDomain.Click)
	router.POST(s.router, "/viewLink", s.linkDomain.View)
	router.GET(s.router, "/getSpotlightProjects", s.spotlightDomain.GetProjects)
	router.POST(s.router, "/viewSpotlightProject", s.spotlightDomain.ViewProject)
	router.POST(s.router, "/createReferralRequest", s.referralDomain.Create)
	router.POST(s.router, "/createCollaborationRequest", s.collaborationDomain.Create)
}
