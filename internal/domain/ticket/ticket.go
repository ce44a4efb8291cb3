package ticket

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/biztime"
)

const (
	MinTitleLength       = 5
	MaxTitleLength       = 100
	MinDescriptionLength = 10
	MaxDescriptionLength = 5000
)

// Ticket is the support-ticket aggregate. Every ticket belongs to exactly one
// creating user; status and priority are constrained to their enumerations.
type Ticket struct {
	id          uint
	title       string
	description string
	status      vo.TicketStatus
	priority    vo.Priority
	creatorID   uint
	createdAt   time.Time
	updatedAt   time.Time
	resolvedAt  *time.Time
}

func NewTicket(title, description string, status vo.TicketStatus, priority vo.Priority, creatorID uint) (*Ticket, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := biztime.NowUTC()
	t := &Ticket{
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		creatorID:   creatorID,
		createdAt:   now,
		updatedAt:   now,
	}
	if status.IsResolved() {
		t.resolvedAt = &now
	}
	return t, nil
}

func ReconstructTicket(
	id uint,
	title, description string,
	status vo.TicketStatus,
	priority vo.Priority,
	creatorID uint,
	createdAt, updatedAt time.Time,
	resolvedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		creatorID:   creatorID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		resolvedAt:  resolvedAt,
	}, nil
}

func (t *Ticket) ID() uint                 { return t.id }
func (t *Ticket) Title() string            { return t.title }
func (t *Ticket) Description() string      { return t.description }
func (t *Ticket) Status() vo.TicketStatus  { return t.status }
func (t *Ticket) Priority() vo.Priority    { return t.priority }
func (t *Ticket) CreatorID() uint          { return t.creatorID }
func (t *Ticket) CreatedAt() time.Time     { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time     { return t.updatedAt }
func (t *Ticket) ResolvedAt() *time.Time   { return t.resolvedAt }

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// Update mutates the editable fields (title, description, status, priority).
func (t *Ticket) Update(title, description string, status vo.TicketStatus, priority vo.Priority) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	if err := validateDescription(description); err != nil {
		return err
	}
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", priority)
	}

	t.title = title
	t.description = description
	t.priority = priority
	t.applyStatus(status)
	t.updatedAt = biztime.NowUTC()
	return nil
}

// ChangeStatus moves the ticket to a new status. Entering resolved stamps the
// resolution time; leaving it clears the stamp.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if t.status == newStatus {
		return nil
	}
	t.applyStatus(newStatus)
	t.updatedAt = biztime.NowUTC()
	return nil
}

func (t *Ticket) applyStatus(newStatus vo.TicketStatus) {
	t.status = newStatus
	if newStatus.IsResolved() {
		if t.resolvedAt == nil {
			now := biztime.NowUTC()
			t.resolvedAt = &now
		}
	} else {
		t.resolvedAt = nil
	}
}

func validateTitle(title string) error {
	if len(title) < MinTitleLength {
		return fmt.Errorf("title must be at least %d characters", MinTitleLength)
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}
	return nil
}

func validateDescription(description string) error {
	if len(description) < MinDescriptionLength {
		return fmt.Errorf("description must be at least %d characters", MinDescriptionLength)
	}
	if len(description) > MaxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", MaxDescriptionLength)
	}
	return nil
}
