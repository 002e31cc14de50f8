// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"reachqr/internal/delivery/http/middleware"
	"reachqr/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler  *handler.ProfileHandler
	RecoveryHandler *handler.RecoveryHandler
	AdminHandler    *handler.AdminHandler
	MediaHandler    *handler.MediaHandler

	AdminMiddleware     *middleware.AdminMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler  *handler.ProfileHandler
	recoveryHandler *handler.RecoveryHandler
	adminHandler    *handler.AdminHandler
	mediaHandler    *handler.MediaHandler

	adminMiddleware     *middleware.AdminMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler:      params.ProfileHandler,
		recoveryHandler:     params.RecoveryHandler,
		adminHandler:        params.AdminHandler,
		mediaHandler:        params.MediaHandler,
		adminMiddleware:     params.AdminMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		// Creation is the abuse-prone route; it carries the rate limit.
		api.POST("/profiles", r.profileHandler.Create, r.rateLimitMiddleware.Limit)

		// Possession of the edit token in the path IS the authentication.
		api.GET("/profiles/:token", r.profileHandler.GetByToken)
		api.PUT("/profiles/:token", r.profileHandler.UpdateByToken)

		api.GET("/check-slug", r.profileHandler.CheckSlug)
		api.POST("/recover", r.recoveryHandler.Recover, r.rateLimitMiddleware.Limit)

		api.GET("/public/:slug", r.profileHandler.GetPublic)
		api.POST("/views", r.profileHandler.RecordView)
		api.GET("/qr/:slug", r.profileHandler.QRCode)

		api.POST("/upload", r.mediaHandler.UploadLogo)
	}

	// Admin routes guarded by the shared secret
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.adminMiddleware.Authenticate)
	{
		adminGroup.GET("/profiles", r.adminHandler.ListProfiles)
		adminGroup.DELETE("/profiles/:id", r.adminHandler.DeleteProfile)
		adminGroup.POST("/notify-all", r.adminHandler.NotifyAll)
	}
}
