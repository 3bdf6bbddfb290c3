// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"punchclock/internal/delivery/api/middleware"
	"punchclock/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// loginRateLimitScope keys the per-IP login attempt counter.
const loginRateLimitScope = "login"

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	EntryHandler        *handler.EntryHandler
	HealthHandler       *handler.HealthHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	entryHandler        *handler.EntryHandler
	healthHandler       *handler.HealthHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		entryHandler:        params.EntryHandler,
		healthHandler:       params.HealthHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Probes and metrics
	e.GET("/health", r.healthHandler.Health)
	e.GET("/ready", r.healthHandler.Ready)
	e.GET("/metrics", r.healthHandler.Metrics)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login, r.rateLimitMiddleware.Limit(loginRateLimitScope))
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	}

	e.DELETE("/account", r.authHandler.DeleteAccount, r.authMiddleware.Authenticate)

	// Time entry routes of the current user
	entriesGroup := e.Group("/entries")
	entriesGroup.Use(r.authMiddleware.Authenticate)
	{
		entriesGroup.POST("/clock-in", r.entryHandler.ClockIn)
		entriesGroup.POST("/clock-out", r.entryHandler.ClockOut)
		entriesGroup.GET("/status", r.entryHandler.Status)
		entriesGroup.GET("/heatmap", r.entryHandler.Heatmap)
		entriesGroup.GET("/export.csv", r.entryHandler.Export)
	}
}
