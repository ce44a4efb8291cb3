package ticket

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

func TestNewTicket(t *testing.T) {
	t.Run("creates ticket with valid fields", func(t *testing.T) {
		tk, err := NewTicket("Printer broken", "The office printer refuses every job.", vo.StatusOpen, vo.PriorityMedium, 1)

		require.NoError(t, err)
		assert.Equal(t, "Printer broken", tk.Title())
		assert.Equal(t, vo.StatusOpen, tk.Status())
		assert.Equal(t, vo.PriorityMedium, tk.Priority())
		assert.Equal(t, uint(1), tk.CreatorID())
		assert.Nil(t, tk.ResolvedAt())
		assert.False(t, tk.CreatedAt().IsZero())
	})

	t.Run("rejects short title", func(t *testing.T) {
		_, err := NewTicket("Bad", "A description long enough.", vo.StatusOpen, vo.PriorityLow, 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "title must be at least")
	})

	t.Run("rejects overlong title", func(t *testing.T) {
		_, err := NewTicket(strings.Repeat("x", MaxTitleLength+1), "A description long enough.", vo.StatusOpen, vo.PriorityLow, 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "title exceeds maximum length")
	})

	t.Run("rejects short description", func(t *testing.T) {
		_, err := NewTicket("Printer broken", "too short", vo.StatusOpen, vo.PriorityLow, 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "description must be at least")
	})

	t.Run("rejects overlong description", func(t *testing.T) {
		_, err := NewTicket("Printer broken", strings.Repeat("x", MaxDescriptionLength+1), vo.StatusOpen, vo.PriorityLow, 1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "description exceeds maximum length")
	})

	t.Run("rejects zero creator", func(t *testing.T) {
		_, err := NewTicket("Printer broken", "A description long enough.", vo.StatusOpen, vo.PriorityLow, 0)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "creator ID is required")
	})

	t.Run("stamps resolution time when created resolved", func(t *testing.T) {
		tk, err := NewTicket("Printer broken", "A description long enough.", vo.StatusResolved, vo.PriorityLow, 1)

		require.NoError(t, err)
		require.NotNil(t, tk.ResolvedAt())
	})
}

func TestTicketUpdate(t *testing.T) {
	newTicket := func(t *testing.T) *Ticket {
		tk, err := NewTicket("Printer broken", "The office printer refuses every job.", vo.StatusOpen, vo.PriorityMedium, 1)
		require.NoError(t, err)
		return tk
	}

	t.Run("mutates editable fields", func(t *testing.T) {
		tk := newTicket(t)

		err := tk.Update("Printer still broken", "Replaced the toner, no change at all.", vo.StatusInProgress, vo.PriorityHigh)

		require.NoError(t, err)
		assert.Equal(t, "Printer still broken", tk.Title())
		assert.Equal(t, "Replaced the toner, no change at all.", tk.Description())
		assert.Equal(t, vo.StatusInProgress, tk.Status())
		assert.Equal(t, vo.PriorityHigh, tk.Priority())
	})

	t.Run("keeps fields on validation failure", func(t *testing.T) {
		tk := newTicket(t)

		err := tk.Update("Bad", "Replaced the toner, no change at all.", vo.StatusOpen, vo.PriorityHigh)

		require.Error(t, err)
		assert.Equal(t, "Printer broken", tk.Title())
		assert.Equal(t, vo.PriorityMedium, tk.Priority())
	})

	t.Run("stamps resolution time when updated to resolved", func(t *testing.T) {
		tk := newTicket(t)

		err := tk.Update("Printer broken", "The office printer refuses every job.", vo.StatusResolved, vo.PriorityMedium)

		require.NoError(t, err)
		require.NotNil(t, tk.ResolvedAt())
	})
}

func TestTicketChangeStatus(t *testing.T) {
	newTicket := func(t *testing.T) *Ticket {
		tk, err := NewTicket("Printer broken", "The office printer refuses every job.", vo.StatusOpen, vo.PriorityMedium, 1)
		require.NoError(t, err)
		return tk
	}

	t.Run("entering resolved stamps resolution time", func(t *testing.T) {
		tk := newTicket(t)

		require.NoError(t, tk.ChangeStatus(vo.StatusResolved))

		assert.Equal(t, vo.StatusResolved, tk.Status())
		require.NotNil(t, tk.ResolvedAt())
	})

	t.Run("leaving resolved clears the stamp", func(t *testing.T) {
		tk := newTicket(t)
		require.NoError(t, tk.ChangeStatus(vo.StatusResolved))

		require.NoError(t, tk.ChangeStatus(vo.StatusOpen))

		assert.Equal(t, vo.StatusOpen, tk.Status())
		assert.Nil(t, tk.ResolvedAt())
	})

	t.Run("resolved to closed clears the stamp", func(t *testing.T) {
		tk := newTicket(t)
		require.NoError(t, tk.ChangeStatus(vo.StatusResolved))

		require.NoError(t, tk.ChangeStatus(vo.StatusClosed))

		assert.Nil(t, tk.ResolvedAt())
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		tk := newTicket(t)
		updatedAt := tk.UpdatedAt()

		require.NoError(t, tk.ChangeStatus(vo.StatusOpen))

		assert.Equal(t, updatedAt, tk.UpdatedAt())
	})
}

func TestTicketSetID(t *testing.T) {
	tk, err := NewTicket("Printer broken", "The office printer refuses every job.", vo.StatusOpen, vo.PriorityMedium, 1)
	require.NoError(t, err)

	require.NoError(t, tk.SetID(7))
	assert.Equal(t, uint(7), tk.ID())

	assert.Error(t, tk.SetID(8))
	assert.Error(t, tk.SetID(0))
}
