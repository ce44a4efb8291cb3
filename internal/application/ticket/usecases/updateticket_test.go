package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
)

func validUpdateCommand() UpdateTicketCommand {
	return UpdateTicketCommand{
		TicketID:    1,
		Title:       "Printer still broken",
		Description: "Replaced the toner, no change at all.",
		Status:      "in_progress",
		Priority:    "high",
		UserID:      7,
		UserRole:    authorization.RoleUser,
	}
}

func TestUpdateTicketUseCase_Execute(t *testing.T) {
	t.Run("owner can edit", func(t *testing.T) {
		var updated *ticket.Ticket
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return existingTicket(1, 7, vo.StatusOpen), nil
			},
			UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				updated = tk
				return nil
			},
		}
		uc := NewUpdateTicketUseCase(ticketRepo, nopLogger{})

		require.NoError(t, uc.Execute(context.Background(), validUpdateCommand()))
		require.NotNil(t, updated)
		assert.Equal(t, "Printer still broken", updated.Title())
		assert.Equal(t, vo.StatusInProgress, updated.Status())
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return existingTicket(1, 99, vo.StatusOpen), nil
			},
			UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				t.Fatal("update must not be reached")
				return nil
			},
		}
		uc := NewUpdateTicketUseCase(ticketRepo, nopLogger{})

		err := uc.Execute(context.Background(), validUpdateCommand())

		require.Error(t, err)
		assert.Equal(t, 403, errors.GetAppError(err).Code)
	})

	t.Run("admin can edit anyone's ticket", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return existingTicket(1, 99, vo.StatusOpen), nil
			},
		}
		uc := NewUpdateTicketUseCase(ticketRepo, nopLogger{})

		cmd := validUpdateCommand()
		cmd.UserRole = authorization.RoleAdmin

		assert.NoError(t, uc.Execute(context.Background(), cmd))
	})

	t.Run("missing ticket propagates not found", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return nil, errors.NewNotFoundError("ticket not found")
			},
		}
		uc := NewUpdateTicketUseCase(ticketRepo, nopLogger{})

		err := uc.Execute(context.Background(), validUpdateCommand())

		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return existingTicket(1, 7, vo.StatusOpen), nil
			},
		}
		uc := NewUpdateTicketUseCase(ticketRepo, nopLogger{})

		cmd := validUpdateCommand()
		cmd.Status = "pending"

		err := uc.Execute(context.Background(), cmd)

		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})
}

func TestChangeTicketStatusUseCase_Execute(t *testing.T) {
	t.Run("resolving stamps the resolution time", func(t *testing.T) {
		var updated *ticket.Ticket
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return existingTicket(1, 7, vo.StatusOpen), nil
			},
			UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				updated = tk
				return nil
			},
		}
		uc := NewChangeTicketStatusUseCase(ticketRepo, nopLogger{})

		require.NoError(t, uc.Execute(context.Background(), ChangeTicketStatusCommand{TicketID: 1, Status: "resolved"}))
		require.NotNil(t, updated)
		assert.Equal(t, vo.StatusResolved, updated.Status())
		assert.NotNil(t, updated.ResolvedAt())
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		uc := NewChangeTicketStatusUseCase(&mockTicketRepository{}, nopLogger{})

		err := uc.Execute(context.Background(), ChangeTicketStatusCommand{TicketID: 1, Status: "pending"})

		require.Error(t, err)
		assert.True(t, errors.IsValidation(err))
	})

	t.Run("missing ticket propagates not found", func(t *testing.T) {
		ticketRepo := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
				return nil, errors.NewNotFoundError("ticket not found")
			},
		}
		uc := NewChangeTicketStatusUseCase(ticketRepo, nopLogger{})

		err := uc.Execute(context.Background(), ChangeTicketStatusCommand{TicketID: 404, Status: "closed"})

		require.Error(t, err)
		assert.True(t, errors.IsNotFound(err))
	})
}
