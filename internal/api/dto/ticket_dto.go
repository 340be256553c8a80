package dto

import "github.com/spec-kit/happy-paws/internal/domain"

// TicketListQuery captures the dashboard filters.
type TicketListQuery struct {
	Search string            `query:"search"`
	Type   domain.TicketType `query:"type"`
}

// TicketSummary is one dashboard row.
type TicketSummary struct {
	ID              string              `json:"id"`
	Protocol        string              `json:"protocol"`
	Type            domain.TicketType   `json:"type"`
	Subject         string              `json:"subject"`
	Status          domain.TicketStatus `json:"status"`
	WaitTime        int                 `json:"wait_time"`
	UserName        string              `json:"user_name"`
	CreatedAt       string              `json:"created_at"`
	AttachmentCount int                 `json:"attachment_count"`
}

// TicketDetail provides full ticket info.
type TicketDetail struct {
	TicketSummary
	Description  string                `json:"description"`
	Attachments  []AttachmentResponse  `json:"attachments"`
	Interactions []InteractionResponse `json:"interactions"`
}

// InteractionResponse represents one conversation entry.
type InteractionResponse struct {
	Author      string `json:"author"`
	Message     string `json:"message"`
	Timestamp   string `json:"timestamp"`
	IsAttendant bool   `json:"is_attendant"`
}

// AttachmentResponse metadata.
type AttachmentResponse struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// RespondRequest payload. An empty message sends the stored draft.
type RespondRequest struct {
	Message string `json:"message"`
}

// DraftRequest payload.
type DraftRequest struct {
	Draft string `json:"draft"`
}

// SupportTicketRequest payload for the tutor's new-ticket dialog.
type SupportTicketRequest struct {
	Category    domain.TicketType `json:"category"`
	Description string            `json:"description"`
}

// SupportTicketResponse is one tutor support case.
type SupportTicketResponse struct {
	ID       string            `json:"id"`
	Protocol string            `json:"protocol"`
	Category domain.TicketType `json:"category"`
	Status   string            `json:"status"`
	Title    string            `json:"title"`
	Date     string            `json:"date"`
}
