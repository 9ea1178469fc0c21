// Package router contains routing setup for the HTTP delivery.
package router

import (
	"zoning/internal/delivery/http/middleware"
	"zoning/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	ApplicantHandler *handler.ApplicantHandler
	TransferHandler  *handler.TransferHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler      *handler.UserHandler
	applicantHandler *handler.ApplicantHandler
	transferHandler  *handler.TransferHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:      params.UserHandler,
		applicantHandler: params.ApplicantHandler,
		transferHandler:  params.TransferHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Applicant routes, scoped to the authenticated officer
	applicantGroup := e.Group("/applicants")
	applicantGroup.Use(r.authMiddleware.Authenticate)
	{
		applicantGroup.GET("", r.applicantHandler.List)
		applicantGroup.POST("", r.applicantHandler.Create)
		applicantGroup.PATCH("/:id/status", r.applicantHandler.UpdateStatus)
		applicantGroup.PATCH("/:id/administrative", r.applicantHandler.UpdateAdministrative)
		applicantGroup.DELETE("/:id", r.applicantHandler.Delete)
		applicantGroup.POST("/import", r.transferHandler.Import)
		applicantGroup.GET("/export", r.transferHandler.Export)
		applicantGroup.POST("/advice", r.applicantHandler.Advice)
	}
}
