package triage

import (
	"errors"
	"strings"
	"time"

	"github.com/spec-kit/happy-paws/internal/domain"
)

// ErrEmptyResponse is returned for blank attendant responses; the ticket is left untouched.
var ErrEmptyResponse = errors.New("response is empty")

// Response describes what an accepted reply changed.
type Response struct {
	Interaction   domain.Interaction
	OldStatus     domain.TicketStatus
	StatusChanged bool
}

// Respond appends an attendant reply to t. The first reply to a ticket under
// review moves it to in-service; later replies never change the status.
func Respond(t *domain.Ticket, message string, now time.Time) (Response, error) {
	message = strings.TrimSpace(message)
	if t == nil || message == "" {
		return Response{}, ErrEmptyResponse
	}
	entry := domain.Interaction{
		Author:    domain.AttendantAuthor,
		Message:   message,
		Timestamp: now.Format("15:04:05"),
	}
	t.Interactions = append(t.Interactions, entry)

	resp := Response{Interaction: entry, OldStatus: t.Status}
	if t.Status == domain.TicketStatusUnderReview {
		t.Status = domain.TicketStatusInService
		resp.StatusChanged = true
	}
	return resp, nil
}

// ErrUnknownTicket is returned when a board does not own the requested ticket.
var ErrUnknownTicket = errors.New("ticket not on board")
