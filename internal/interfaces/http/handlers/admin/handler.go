// Package admin serves the admin dashboard and its moderation actions.
package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	adminusecases "helpdesk/internal/application/admin/usecases"
	ticketusecases "helpdesk/internal/application/ticket/usecases"
	userusecases "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/interfaces/http/handlers/common"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

const deletedUserName = "deleted user"

// commentPreviewLength bounds comment text in the dashboard table.
const commentPreviewLength = 80

type UserRow struct {
	ID       uint
	Username string
	Email    string
	Role     string
}

type TicketRow struct {
	ID          uint
	Title       string
	CreatorName string
	Status      string
	Priority    string
}

type CommentRow struct {
	ID         uint
	TicketID   uint
	AuthorName string
	Content    string
}

type Handler struct {
	dashboardUseCase     adminusecases.GetDashboardExecutor
	changeStatusUseCase  ticketusecases.ChangeTicketStatusExecutor
	deleteTicketUseCase  ticketusecases.DeleteTicketExecutor
	deleteCommentUseCase ticketusecases.DeleteCommentExecutor
	deleteUserUseCase    userusecases.DeleteUserExecutor
	logger               logger.Interface
}

func NewHandler(
	dashboardUseCase adminusecases.GetDashboardExecutor,
	changeStatusUseCase ticketusecases.ChangeTicketStatusExecutor,
	deleteTicketUseCase ticketusecases.DeleteTicketExecutor,
	deleteCommentUseCase ticketusecases.DeleteCommentExecutor,
	deleteUserUseCase userusecases.DeleteUserExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		dashboardUseCase:     dashboardUseCase,
		changeStatusUseCase:  changeStatusUseCase,
		deleteTicketUseCase:  deleteTicketUseCase,
		deleteCommentUseCase: deleteCommentUseCase,
		deleteUserUseCase:    deleteUserUseCase,
		logger:               logger,
	}
}

// previewComment counts runes so a multi-byte character is never split.
func previewComment(content string) string {
	runes := []rune(content)
	if len(runes) <= commentPreviewLength {
		return content
	}
	return string(runes[:commentPreviewLength]) + "..."
}

// Dashboard renders every user, ticket and comment in the system.
func (h *Handler) Dashboard(c *gin.Context) {
	result, err := h.dashboardUseCase.Execute(c.Request.Context())
	if err != nil {
		common.RenderError(c, err)
		return
	}

	names := make(map[uint]string, len(result.Users))
	users := make([]UserRow, 0, len(result.Users))
	for _, u := range result.Users {
		names[u.ID()] = u.Username()
		users = append(users, UserRow{
			ID:       u.ID(),
			Username: u.Username(),
			Email:    u.Email(),
			Role:     u.Role().String(),
		})
	}

	displayName := func(userID uint) string {
		if name, ok := names[userID]; ok {
			return name
		}
		return deletedUserName
	}

	tickets := make([]TicketRow, 0, len(result.Tickets))
	for _, t := range result.Tickets {
		tickets = append(tickets, TicketRow{
			ID:          t.ID(),
			Title:       t.Title(),
			CreatorName: displayName(t.CreatorID()),
			Status:      t.Status().String(),
			Priority:    t.Priority().String(),
		})
	}

	comments := make([]CommentRow, 0, len(result.Comments))
	for _, cm := range result.Comments {
		comments = append(comments, CommentRow{
			ID:         cm.ID(),
			TicketID:   cm.TicketID(),
			AuthorName: displayName(cm.UserID()),
			Content:    previewComment(cm.Content()),
		})
	}

	data := common.BaseData(c, "Admin Dashboard")
	data["Users"] = users
	data["Tickets"] = tickets
	data["Comments"] = comments
	c.HTML(http.StatusOK, "admin.html", data)
}

// UpdateTicketStatus applies the status picked in the dashboard ticket table.
func (h *Handler) UpdateTicketStatus(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		common.RenderError(c, err)
		return
	}

	err = h.changeStatusUseCase.Execute(c.Request.Context(), ticketusecases.ChangeTicketStatusCommand{
		TicketID: ticketID,
		Status:   c.PostForm("status"),
	})
	if err != nil {
		common.RenderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

// DeleteTicket removes a ticket together with its comments.
func (h *Handler) DeleteTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		common.RenderError(c, err)
		return
	}

	if err := h.deleteTicketUseCase.Execute(c.Request.Context(), ticketusecases.DeleteTicketCommand{
		TicketID: ticketID,
	}); err != nil {
		common.RenderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

// DeleteUser removes a user account. The user's tickets stay in place.
func (h *Handler) DeleteUser(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		common.RenderError(c, err)
		return
	}

	if err := h.deleteUserUseCase.Execute(c.Request.Context(), userusecases.DeleteUserCommand{
		UserID: userID,
	}); err != nil {
		common.RenderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

// DeleteComment removes a single comment.
func (h *Handler) DeleteComment(c *gin.Context) {
	commentID, err := utils.ParseUintParam(c, "id", "comment")
	if err != nil {
		common.RenderError(c, err)
		return
	}

	if err := h.deleteCommentUseCase.Execute(c.Request.Context(), ticketusecases.DeleteCommentCommand{
		CommentID: commentID,
	}); err != nil {
		common.RenderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}
