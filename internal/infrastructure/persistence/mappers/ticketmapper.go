package mappers

import (
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/biztime"
)

type TicketMapper struct{}

func NewTicketMapper() TicketMapper {
	return TicketMapper{}
}

func (TicketMapper) ToModel(t *ticket.Ticket) *models.TicketModel {
	var resolvedAt *int64
	if t.ResolvedAt() != nil {
		ms := biztime.TimeToUnixMilli(*t.ResolvedAt())
		resolvedAt = &ms
	}

	return &models.TicketModel{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		CreatorID:   t.CreatorID(),
		CreatedAt:   biztime.TimeToUnixMilli(t.CreatedAt()),
		UpdatedAt:   biztime.TimeToUnixMilli(t.UpdatedAt()),
		ResolvedAt:  resolvedAt,
	}
}

func (TicketMapper) ToDomain(m *models.TicketModel) (*ticket.Ticket, error) {
	var resolvedAt *time.Time
	if m.ResolvedAt != nil {
		t := biztime.UnixMilliToTime(*m.ResolvedAt)
		resolvedAt = &t
	}

	return ticket.ReconstructTicket(
		m.ID,
		m.Title,
		m.Description,
		vo.TicketStatus(m.Status),
		vo.Priority(m.Priority),
		m.CreatorID,
		biztime.UnixMilliToTime(m.CreatedAt),
		biztime.UnixMilliToTime(m.UpdatedAt),
		resolvedAt,
	)
}

type CommentMapper struct{}

func NewCommentMapper() CommentMapper {
	return CommentMapper{}
}

func (CommentMapper) ToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		UserID:    c.UserID(),
		Content:   c.Content(),
		CreatedAt: biztime.TimeToUnixMilli(c.CreatedAt()),
	}
}

func (CommentMapper) ToDomain(m *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		m.ID,
		m.TicketID,
		m.UserID,
		m.Content,
		biztime.UnixMilliToTime(m.CreatedAt),
	)
}
