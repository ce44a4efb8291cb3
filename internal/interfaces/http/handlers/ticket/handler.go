// Package ticket serves the ticket pages: list, create, view with comments,
// and edit.
package ticket

import (
	"context"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/interfaces/http/handlers/common"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/services/markdown"
	"helpdesk/internal/shared/utils"
)

// deletedUserName labels content whose author account has been removed.
// Tickets and comments survive user deletion.
const deletedUserName = "deleted user"

type Handler struct {
	createUseCase     usecases.CreateTicketExecutor
	listUseCase       usecases.ListTicketsExecutor
	getUseCase        usecases.GetTicketExecutor
	updateUseCase     usecases.UpdateTicketExecutor
	addCommentUseCase usecases.AddCommentExecutor
	userRepo          user.Repository
	markdown          markdown.Service
	logger            logger.Interface
}

func NewHandler(
	createUseCase usecases.CreateTicketExecutor,
	listUseCase usecases.ListTicketsExecutor,
	getUseCase usecases.GetTicketExecutor,
	updateUseCase usecases.UpdateTicketExecutor,
	addCommentUseCase usecases.AddCommentExecutor,
	userRepo user.Repository,
	markdownService markdown.Service,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createUseCase:     createUseCase,
		listUseCase:       listUseCase,
		getUseCase:        getUseCase,
		updateUseCase:     updateUseCase,
		addCommentUseCase: addCommentUseCase,
		userRepo:          userRepo,
		markdown:          markdownService,
		logger:            logger,
	}
}

// Index lists tickets scoped to the viewer: admins see everything, regular
// users only their own.
func (h *Handler) Index(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)

	query := usecases.ListTicketsQuery{
		UserID:   identity.UserID,
		UserRole: identity.Role,
	}
	if status := c.Query("status"); status != "" {
		query.Status = &status
	}
	if priority := c.Query("priority"); priority != "" {
		query.Priority = &priority
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), query)
	if err != nil {
		common.RenderError(c, err)
		return
	}

	rows := make([]TicketRow, 0, len(result.Tickets))
	for _, t := range result.Tickets {
		rows = append(rows, TicketRow{
			ID:        t.ID(),
			Title:     t.Title(),
			Status:    t.Status().String(),
			Priority:  t.Priority().String(),
			CreatedAt: common.FormatTime(t.CreatedAt()),
		})
	}

	data := common.BaseData(c, "Tickets")
	data["Tickets"] = rows
	c.HTML(http.StatusOK, "index.html", data)
}

// ShowCreate renders the new-ticket form.
func (h *Handler) ShowCreate(c *gin.Context) {
	data := common.BaseData(c, "New Ticket")
	data["Priority"] = "medium"
	c.HTML(http.StatusOK, "create_ticket.html", data)
}

// Create submits a new ticket. New tickets always start open.
func (h *Handler) Create(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)

	var form CreateTicketForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderCreateError(c, "invalid form submission", form)
		return
	}

	_, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Title:       form.Title,
		Description: form.Description,
		Status:      "open",
		Priority:    form.Priority,
		CreatorID:   identity.UserID,
	})
	if err != nil {
		if errors.IsValidation(err) {
			h.renderCreateError(c, errors.GetAppError(err).Message, form)
			return
		}
		common.RenderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// Show renders a ticket with its comment thread.
func (h *Handler) Show(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		common.RenderError(c, err)
		return
	}
	h.renderTicketPage(c, ticketID, "", http.StatusOK)
}

// AddComment appends a comment to the ticket thread.
func (h *Handler) AddComment(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		common.RenderError(c, err)
		return
	}

	var form CommentForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderTicketPage(c, ticketID, "invalid form submission", http.StatusBadRequest)
		return
	}

	_, err = h.addCommentUseCase.Execute(c.Request.Context(), usecases.AddCommentCommand{
		TicketID: ticketID,
		UserID:   identity.UserID,
		Content:  form.Content,
	})
	if err != nil {
		if errors.IsValidation(err) {
			h.renderTicketPage(c, ticketID, errors.GetAppError(err).Message, http.StatusBadRequest)
			return
		}
		common.RenderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, ticketPath(ticketID))
}

// ShowUpdate renders the edit form. Only the ticket creator or an admin may
// open it.
func (h *Handler) ShowUpdate(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		common.RenderError(c, err)
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		common.RenderError(c, err)
		return
	}

	t := result.Ticket
	if !authorization.CanAccessResourceByOwnerID(identity.UserID, identity.Role, t.CreatorID()) {
		common.RenderError(c, errors.NewForbiddenError("you do not have permission to edit this ticket"))
		return
	}

	data := common.BaseData(c, "Edit Ticket")
	data["Ticket"] = TicketView{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
	}
	c.HTML(http.StatusOK, "update_ticket.html", data)
}

// Update applies the edit form.
func (h *Handler) Update(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		common.RenderError(c, err)
		return
	}

	var form UpdateTicketForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderUpdateError(c, ticketID, "invalid form submission", form)
		return
	}

	err = h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		Title:       form.Title,
		Description: form.Description,
		Status:      form.Status,
		Priority:    form.Priority,
		UserID:      identity.UserID,
		UserRole:    identity.Role,
	})
	if err != nil {
		if errors.IsValidation(err) {
			h.renderUpdateError(c, ticketID, errors.GetAppError(err).Message, form)
			return
		}
		common.RenderError(c, err)
		return
	}

	c.Redirect(http.StatusFound, ticketPath(ticketID))
}

func (h *Handler) renderTicketPage(c *gin.Context, ticketID uint, errMsg string, status int) {
	identity, _ := middleware.CurrentIdentity(c)

	result, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		common.RenderError(c, err)
		return
	}

	t := result.Ticket
	names := h.resolveUsernames(c.Request.Context(), t, result.Comments)

	descriptionHTML, err := h.markdown.ToHTMLSanitized(t.Description())
	if err != nil {
		h.logger.Errorw("failed to render ticket description", "error", err, "ticket_id", t.ID())
		descriptionHTML = template.HTMLEscapeString(t.Description())
	}

	view := TicketView{
		ID:              t.ID(),
		Title:           t.Title(),
		DescriptionHTML: template.HTML(descriptionHTML),
		Status:          t.Status().String(),
		Priority:        t.Priority().String(),
		CreatorName:     names[t.CreatorID()],
		CreatedAt:       common.FormatTime(t.CreatedAt()),
	}
	if resolvedAt := t.ResolvedAt(); resolvedAt != nil {
		view.ResolvedAt = common.FormatTime(*resolvedAt)
	}

	comments := make([]CommentView, 0, len(result.Comments))
	for _, cm := range result.Comments {
		contentHTML, err := h.markdown.ToHTMLSanitized(cm.Content())
		if err != nil {
			h.logger.Errorw("failed to render comment", "error", err, "comment_id", cm.ID())
			contentHTML = template.HTMLEscapeString(cm.Content())
		}
		comments = append(comments, CommentView{
			ID:          cm.ID(),
			AuthorName:  names[cm.UserID()],
			ContentHTML: template.HTML(contentHTML),
			CreatedAt:   common.FormatTime(cm.CreatedAt()),
		})
	}

	data := common.BaseData(c, t.Title())
	data["Ticket"] = view
	data["Comments"] = comments
	data["CanEdit"] = authorization.CanAccessResourceByOwnerID(identity.UserID, identity.Role, t.CreatorID())
	data["IsAdmin"] = identity.IsAdmin()
	if errMsg != "" {
		data["Error"] = errMsg
	}
	c.HTML(status, "ticket.html", data)
}

// resolveUsernames maps the ticket creator and comment authors to display
// names. Authors whose accounts are gone show as deleted.
func (h *Handler) resolveUsernames(ctx context.Context, t *ticket.Ticket, comments []*ticket.Comment) map[uint]string {
	names := map[uint]string{}

	lookup := func(userID uint) {
		if _, done := names[userID]; done {
			return
		}
		u, err := h.userRepo.GetByID(ctx, userID)
		if err != nil || u == nil {
			names[userID] = deletedUserName
			return
		}
		names[userID] = u.Username()
	}

	lookup(t.CreatorID())
	for _, cm := range comments {
		lookup(cm.UserID())
	}
	return names
}

func (h *Handler) renderCreateError(c *gin.Context, message string, form CreateTicketForm) {
	data := common.BaseData(c, "New Ticket")
	data["Error"] = message
	data["TicketTitle"] = form.Title
	data["Description"] = form.Description
	data["Priority"] = form.Priority
	c.HTML(http.StatusBadRequest, "create_ticket.html", data)
}

func (h *Handler) renderUpdateError(c *gin.Context, ticketID uint, message string, form UpdateTicketForm) {
	data := common.BaseData(c, "Edit Ticket")
	data["Error"] = message
	data["Ticket"] = TicketView{
		ID:          ticketID,
		Title:       form.Title,
		Description: form.Description,
		Status:      form.Status,
		Priority:    form.Priority,
	}
	c.HTML(http.StatusBadRequest, "update_ticket.html", data)
}

func ticketPath(ticketID uint) string {
	return "/ticket/" + utils.FormatUint(ticketID)
}
