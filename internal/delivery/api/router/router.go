// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"twashell/config"
	"twashell/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DispatchHandler *handler.DispatchHandler
	TokenHandler    *handler.TokenHandler
	TestHandler     *handler.TestHandler
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	dispatchHandler *handler.DispatchHandler
	tokenHandler    *handler.TokenHandler
	testHandler     *handler.TestHandler
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		dispatchHandler: params.DispatchHandler,
		tokenHandler:    params.TokenHandler,
		testHandler:     params.TestHandler,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiGroup := e.Group("/api")
	{
		// Notification dispatch gateway
		apiGroup.POST("/send-notification", r.dispatchHandler.SendNotification)
		apiGroup.GET("/send-notification", r.dispatchHandler.DescribeSendAPI)

		// Registration token lifecycle
		apiGroup.POST("/token/acquire", r.tokenHandler.AcquireToken)
		apiGroup.GET("/token", r.tokenHandler.GetToken)
		apiGroup.DELETE("/token", r.tokenHandler.ClearToken)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.POST("/foreground-message", r.testHandler.PublishForegroundMessage)
		testGroup.GET("/foreground-message/next", r.testHandler.AwaitForegroundMessage)
	}
}
