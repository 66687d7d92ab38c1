// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vidtube/internal/delivery/api/middleware"
	"vidtube/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	scopeRegister = "register"
	scopeLogin    = "login"
	scopeRefresh  = "refresh"
)

type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	VideoHandler      *handler.VideoHandler
	EngagementHandler *handler.EngagementHandler
	SessionMiddleware *middleware.SessionMiddleware
	RateLimit         *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler       *handler.UserHandler
	videoHandler      *handler.VideoHandler
	engagementHandler *handler.EngagementHandler
	session           *middleware.SessionMiddleware
	rateLimit         *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:       params.UserHandler,
		videoHandler:      params.VideoHandler,
		engagementHandler: params.EngagementHandler,
		session:           params.SessionMiddleware,
		rateLimit:         params.RateLimit,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	auth := r.session.Authenticate

	usersGroup := apiV1.Group("/users")
	{
		usersGroup.POST("/register", r.userHandler.Register, r.rateLimit.Limit(scopeRegister))
		usersGroup.POST("/login", r.userHandler.Login, r.rateLimit.Limit(scopeLogin))
		usersGroup.POST("/refresh-token", r.userHandler.RefreshToken, r.rateLimit.Limit(scopeRefresh))

		usersGroup.POST("/logout", r.userHandler.Logout, auth)
		usersGroup.POST("/change-password", r.userHandler.ChangePassword, auth)
		usersGroup.GET("/current-user", r.userHandler.CurrentUser, auth)
		usersGroup.PATCH("/update-account", r.userHandler.UpdateAccount, auth)
		usersGroup.PATCH("/avatar", r.userHandler.UpdateAvatar, auth)
		usersGroup.PATCH("/cover-image", r.userHandler.UpdateCoverImage, auth)
		usersGroup.GET("/c/:username", r.userHandler.ChannelProfile, auth)
		usersGroup.GET("/history", r.userHandler.WatchHistory, auth)
	}

	videosGroup := apiV1.Group("/videos")
	{
		videosGroup.GET("", r.videoHandler.List)
		videosGroup.POST("", r.videoHandler.Publish, auth)
		videosGroup.GET("/:videoId", r.videoHandler.Detail, auth)
		videosGroup.PATCH("/:videoId", r.videoHandler.Update, auth)
		videosGroup.DELETE("/:videoId", r.videoHandler.Delete, auth)
		videosGroup.PATCH("/toggle/publish/:videoId", r.videoHandler.TogglePublish, auth)
	}

	// Engagement routes all require authentication
	apiV1.POST("/subscriptions/c/:channelId", r.engagementHandler.ToggleSubscription, auth)
	apiV1.POST("/likes/toggle/v/:videoId", r.engagementHandler.ToggleLike, auth)
	apiV1.POST("/comments/:videoId", r.engagementHandler.AddComment, auth)
}
