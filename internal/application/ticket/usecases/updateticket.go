package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateTicketCommand struct {
	TicketID    uint
	Title       string
	Description string
	Status      string
	Priority    string
	// Actor identity, for the owner-or-admin check.
	UserID   uint
	UserRole authorization.UserRole
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) error
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) error {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	// Only the creating user or an admin may edit a ticket.
	if !authorization.CanAccessResourceByOwnerID(cmd.UserID, cmd.UserRole, t.CreatorID()) {
		return errors.NewForbiddenError("you do not have permission to edit this ticket")
	}

	status, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return errors.NewValidationError("invalid status")
	}
	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return errors.NewValidationError("invalid priority")
	}

	if err := t.Update(cmd.Title, cmd.Description, status, priority); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", t.ID())
		return errors.NewInternalError("failed to update ticket")
	}

	uc.logger.Infow("ticket updated", "ticket_id", t.ID(), "user_id", cmd.UserID)
	return nil
}
