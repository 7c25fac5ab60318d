package router

import (
	"github.com/labstack/echo/v4"

	authController "collegefaq/pkg/auth/controller"
	"collegefaq/pkg/auth/token"
	chatController "collegefaq/pkg/chat/controller"
	"collegefaq/pkg/middleware"
)

func New(
	e *echo.Echo,
	tokens *token.Manager,
	authCtrl authController.AuthController,
	chatCtrl chatController.ChatController,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	auth := e.Group("/auth")
	auth.POST("/signup", authCtrl.Signup)
	auth.POST("/login", authCtrl.Login)
	auth.POST("/forgot-password", authCtrl.ForgotPassword)
	auth.POST("/reset-password", authCtrl.ResetPassword)

	api := e.Group("/api")
	// identity is optional on chat, required on history
	api.POST("/chat", chatCtrl.Chat, middleware.OptionalAuth(tokens))
	api.GET("/chat/history", chatCtrl.History, middleware.RequireAuth(tokens))

	return e
}
