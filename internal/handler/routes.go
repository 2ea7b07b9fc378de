package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/relayy/relayy-backend/internal/middleware"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, joinLimiter *middleware.RateLimiter, authHandler *AuthHandler, workspaceHandler *WorkspaceHandler, wsHandler *WebSocketHandler) {
	// API version 1
	api := e.Group("/api/v1")

	// Auth routes (protected; callback runs before the user row exists)
	auth := api.Group("/auth")
	auth.Use(authMiddleware.Authenticate())
	auth.POST("/callback", authHandler.Callback)
	auth.GET("/me", authHandler.Me)
	auth.POST("/logout", authHandler.Logout)

	// Workspace routes (protected, require a provisioned user)
	workspaces := api.Group("/workspaces")
	workspaces.Use(authMiddleware.Authenticate(), authMiddleware.RequireUser())
	workspaces.GET("/landing", workspaceHandler.Landing)
	workspaces.GET("", workspaceHandler.List)
	workspaces.POST("", workspaceHandler.Create)
	workspaces.POST("/join", workspaceHandler.Join, middleware.RateLimitMiddleware(joinLimiter))
	workspaces.GET("/:id", workspaceHandler.Get)
	workspaces.GET("/:id/invite", workspaceHandler.GetInvite)
	workspaces.PATCH("/:id", workspaceHandler.Rename)
	workspaces.DELETE("/:id", workspaceHandler.Delete)

	// WebSocket endpoint (token-authenticated via query parameter)
	e.GET("/ws", wsHandler.HandleWS)
}
