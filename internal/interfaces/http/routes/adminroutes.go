package routes

import (
	"github.com/gin-gonic/gin"

	adminhandler "helpdesk/internal/interfaces/http/handlers/admin"
	"helpdesk/internal/interfaces/http/middleware"
)

// RegisterAdminRoutes wires the dashboard and its moderation actions behind
// the admin role check.
func RegisterAdminRoutes(
	router *gin.Engine,
	handler *adminhandler.Handler,
	authMW *middleware.AuthMiddleware,
) {
	admin := router.Group("/admin", authMW.RequireAuth(), middleware.RequireAdmin())

	admin.GET("", handler.Dashboard)
	admin.POST("/update_ticket_status/:id", handler.UpdateTicketStatus)
	admin.POST("/delete_ticket/:id", handler.DeleteTicket)
	admin.POST("/delete_user/:id", handler.DeleteUser)
	admin.POST("/delete_comment/:id", handler.DeleteComment)
}
