package routes

import (
	"github.com/gin-gonic/gin"

	tickethandler "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
)

// RegisterTicketRoutes wires the ticket pages. Everything here requires a
// signed-in user; per-ticket ownership checks live in the use cases.
func RegisterTicketRoutes(
	router *gin.Engine,
	handler *tickethandler.Handler,
	authMW *middleware.AuthMiddleware,
) {
	authed := router.Group("", authMW.RequireAuth())

	authed.GET("/", handler.Index)
	authed.GET("/create_ticket", handler.ShowCreate)
	authed.POST("/create_ticket", handler.Create)
	authed.GET("/ticket/:id", handler.Show)
	authed.POST("/ticket/:id", handler.AddComment)
	authed.GET("/update_ticket/:id", handler.ShowUpdate)
	authed.POST("/update_ticket/:id", handler.Update)
}
