package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetDashboardResult struct {
	Users    []*user.User
	Tickets  []*ticket.Ticket
	Comments []*ticket.Comment
}

type GetDashboardExecutor interface {
	Execute(ctx context.Context) (*GetDashboardResult, error)
}

// GetDashboardUseCase assembles the admin panel: every user, ticket and
// comment in the system.
type GetDashboardUseCase struct {
	userRepo    user.Repository
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewGetDashboardUseCase(
	userRepo user.Repository,
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		userRepo:    userRepo,
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context) (*GetDashboardResult, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users for dashboard", "error", err)
		return nil, errors.NewInternalError("failed to load dashboard")
	}

	tickets, err := uc.ticketRepo.List(ctx, ticket.TicketFilter{})
	if err != nil {
		uc.logger.Errorw("failed to list tickets for dashboard", "error", err)
		return nil, errors.NewInternalError("failed to load dashboard")
	}

	comments, err := uc.commentRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list comments for dashboard", "error", err)
		return nil, errors.NewInternalError("failed to load dashboard")
	}

	return &GetDashboardResult{
		Users:    users,
		Tickets:  tickets,
		Comments: comments,
	}, nil
}
