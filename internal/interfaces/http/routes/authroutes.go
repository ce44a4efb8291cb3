package routes

import (
	"github.com/gin-gonic/gin"

	authhandler "helpdesk/internal/interfaces/http/handlers/auth"
	"helpdesk/internal/interfaces/http/middleware"
)

// RegisterAuthRoutes wires the session lifecycle pages. Login and register
// carry a rate limit when one is configured.
func RegisterAuthRoutes(
	router *gin.Engine,
	handler *authhandler.Handler,
	authMW *middleware.AuthMiddleware,
	loginLimiter gin.HandlerFunc,
	registerLimiter gin.HandlerFunc,
) {
	router.GET("/login", authMW.OptionalAuth(), middleware.RedirectIfAuthenticated(), handler.ShowLogin)
	router.POST("/login", loginLimiter, authMW.OptionalAuth(), middleware.RedirectIfAuthenticated(), handler.Login)

	router.GET("/register", authMW.OptionalAuth(), middleware.RedirectIfAuthenticated(), handler.ShowRegister)
	router.POST("/register", registerLimiter, authMW.OptionalAuth(), middleware.RedirectIfAuthenticated(), handler.Register)

	router.GET("/logout", authMW.OptionalAuth(), handler.Logout)

	// Admin bootstrap: authorized by an admin session or, while no admin
	// exists, by the configured setup token.
	router.POST("/create_admin", registerLimiter, authMW.OptionalAuth(), handler.CreateAdmin)
}
