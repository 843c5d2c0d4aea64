// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tube/config"
	"tube/internal/delivery/api/middleware"
	"tube/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	ProfileHandler *handler.ProfileHandler
	HealthHandler  *handler.HealthHandler
	MediaHandler   *handler.MediaHandler
	AuthMiddleware *middleware.AuthMiddleware
	Gatherer       prometheus.Gatherer
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	profileHandler *handler.ProfileHandler
	healthHandler  *handler.HealthHandler
	mediaHandler   *handler.MediaHandler
	authMiddleware *middleware.AuthMiddleware
	gatherer       prometheus.Gatherer
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		profileHandler: params.ProfileHandler,
		healthHandler:  params.HealthHandler,
		mediaHandler:   params.MediaHandler,
		authMiddleware: params.AuthMiddleware,
		gatherer:       params.Gatherer,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))
	e.GET("/media/*", r.mediaHandler.GetMedia)

	limiter := middleware.NewRateLimiter(r.config.HTTP.RateLimit)

	usersGroup := e.Group("/api/v1/users")
	{
		usersGroup.POST("/register", r.userHandler.Register, limiter)
		usersGroup.POST("/login", r.authHandler.Login, limiter)
		usersGroup.POST("/refresh-token", r.authHandler.RefreshToken)
	}

	// Routes that require a valid access token
	securedGroup := usersGroup.Group("")
	securedGroup.Use(r.authMiddleware.Authenticate)
	{
		securedGroup.POST("/logout", r.authHandler.Logout)
		securedGroup.POST("/change-password", r.userHandler.ChangePassword)
		securedGroup.GET("/get-user", r.userHandler.GetCurrentUser)
		securedGroup.PATCH("/update-account", r.userHandler.UpdateAccount)
		securedGroup.PATCH("/update-avatar", r.userHandler.UpdateAvatar)
		securedGroup.PATCH("/update-coverImage", r.userHandler.UpdateCoverImage)
		securedGroup.GET("/c/:username", r.profileHandler.GetChannelProfile)
		securedGroup.GET("/history", r.profileHandler.GetWatchHistory)
	}
}
