package ticket

import "html/template"

// CreateTicketForm is the new-ticket form payload. Status is not part of the
// form; new tickets always start open.
type CreateTicketForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Priority    string `form:"priority"`
}

// UpdateTicketForm is the edit form payload.
type UpdateTicketForm struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Status      string `form:"status"`
	Priority    string `form:"priority"`
}

// CommentForm is the add-comment payload on the ticket page.
type CommentForm struct {
	Content string `form:"content"`
}

// TicketView is the template model for a single ticket.
type TicketView struct {
	ID              uint
	Title           string
	Description     string
	DescriptionHTML template.HTML
	Status          string
	Priority        string
	CreatorName     string
	CreatedAt       string
	ResolvedAt      string
}

// TicketRow is the template model for a ticket list entry.
type TicketRow struct {
	ID        uint
	Title     string
	Status    string
	Priority  string
	CreatedAt string
}

// CommentView is the template model for a ticket comment.
type CommentView struct {
	ID          uint
	AuthorName  string
	ContentHTML template.HTML
	CreatedAt   string
}
