package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ChangeTicketStatusCommand struct {
	TicketID uint
	Status   string
}

type ChangeTicketStatusExecutor interface {
	Execute(ctx context.Context, cmd ChangeTicketStatusCommand) error
}

// ChangeTicketStatusUseCase backs the admin status action. Route-level
// authorization has already established the admin role.
type ChangeTicketStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewChangeTicketStatusUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ChangeTicketStatusUseCase {
	return &ChangeTicketStatusUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ChangeTicketStatusUseCase) Execute(ctx context.Context, cmd ChangeTicketStatusCommand) error {
	status, err := vo.NewTicketStatus(cmd.Status)
	if err != nil {
		return errors.NewValidationError("invalid status")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	if err := t.ChangeStatus(status); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to persist status change", "error", err, "ticket_id", t.ID())
		return errors.NewInternalError("failed to change ticket status")
	}

	uc.logger.Infow("ticket status changed", "ticket_id", t.ID(), "status", status.String())
	return nil
}
