package ticket

import (
	"context"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// TicketFilter scopes a listing. CreatorID is the security boundary between a
// regular user's view and the admin view, not a convenience filter.
type TicketFilter struct {
	Status    *vo.TicketStatus
	Priority  *vo.Priority
	CreatorID *uint
}

type TicketRepository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, error)
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	GetByID(ctx context.Context, commentID uint) (*Comment, error)
	// GetByTicketID returns the ticket's comments ordered by creation time
	// ascending.
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
	List(ctx context.Context) ([]*Comment, error)
	Delete(ctx context.Context, commentID uint) error
	DeleteByTicketID(ctx context.Context, ticketID uint) error
}
