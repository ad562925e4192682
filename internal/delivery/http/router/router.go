// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"userperm/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler *handler.UserHandler
	AuthHandler *handler.AuthHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler *handler.UserHandler
	authHandler *handler.AuthHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler: params.UserHandler,
		authHandler: params.AuthHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	e.POST("/login", r.authHandler.Login)

	userGroup := e.Group("/users")
	{
		userGroup.POST("", r.userHandler.CreateUser)
		userGroup.GET("/:id", r.userHandler.GetUser)
		userGroup.POST("/:id/roles", r.userHandler.AssignRole)
	}
}
