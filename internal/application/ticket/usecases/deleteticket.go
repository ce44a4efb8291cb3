package usecases

import (
	"context"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID uint
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) error
}

// DeleteTicketUseCase removes a ticket and its comments in one transaction,
// so a failure leaves both intact.
type DeleteTicketUseCase struct {
	db          *gorm.DB
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	logger      logger.Interface
}

func NewDeleteTicketUseCase(
	gormDB *gorm.DB,
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		db:          gormDB,
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	err := db.WithTransaction(ctx, uc.db, func(txCtx context.Context) error {
		if err := uc.commentRepo.DeleteByTicketID(txCtx, cmd.TicketID); err != nil {
			return err
		}
		// Delete reports NotFound when the ticket never existed; the empty
		// comment cascade above is rolled back with it.
		return uc.ticketRepo.Delete(txCtx, cmd.TicketID)
	})
	if err != nil {
		if errors.IsNotFound(err) {
			return err
		}
		uc.logger.Errorw("failed to delete ticket", "error", err, "ticket_id", cmd.TicketID)
		return err
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID)
	return nil
}
