package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/happy-paws/internal/domain"
	"github.com/spec-kit/happy-paws/internal/events"
	"github.com/spec-kit/happy-paws/internal/navigation"
	"github.com/spec-kit/happy-paws/internal/triage"
	apperrors "github.com/spec-kit/happy-paws/pkg/util/errorutil"
)

// TicketService coordinates the attendant dashboard and ticket detail screens.
type TicketService struct {
	sessions *SessionService
}

// NewTicketService builds the service.
func NewTicketService(sessions *SessionService) *TicketService {
	return &TicketService{sessions: sessions}
}

// TicketFilter is the dashboard's search box and type chip.
type TicketFilter struct {
	Search string
	Type   domain.TicketType
}

// List returns the triaged tickets as copies. On the dashboard the inputs are remembered.
func (s *TicketService) List(sessionID string, f TicketFilter) ([]*domain.Ticket, error) {
	if f.Type != "" && !f.Type.Valid() {
		return nil, apperrors.NewValidationError("invalid ticket type", map[string]any{"type": string(f.Type)})
	}
	var out []*domain.Ticket
	err := s.sessions.withSession(sessionID, func(sess *Session) error {
		if d, ok := sess.local.(*navigation.DashboardLocal); ok {
			d.Search = f.Search
			d.Filter = f.Type
		}
		listed := sess.board.List(triage.Filter{Query: f.Search, Type: f.Type})
		out = make([]*domain.Ticket, 0, len(listed))
		for _, t := range listed {
			out = append(out, t.Clone())
		}
		return nil
	})
	return out, err
}

// Select opens the ticket detail for id.
func (s *TicketService) Select(ctx context.Context, sessionID, ticketID string) (Snapshot, error) {
	var snap Snapshot
	err := s.sessions.withSession(sessionID, func(sess *Session) error {
		ticket, ok := sess.board.Get(ticketID)
		if !ok {
			return apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		if !s.sessions.applyLocked(ctx, sess, navigation.TicketSelected(ticket)) {
			return apperrors.NewInvalidTransition(string(sess.state.CurrentScreen), string(navigation.EventTicketSelected))
		}
		snap = s.sessions.snapshotLocked(sess)
		return nil
	})
	return snap, err
}

// DispatchSelect routes a raw ticket_selected event. An unknown or empty id
// reaches the router as a selection without a ticket, so it is refused like
// any other invalid navigation request.
func (s *TicketService) DispatchSelect(ctx context.Context, sessionID, ticketID string) (Result, error) {
	var res Result
	err := s.sessions.withSession(sessionID, func(sess *Session) error {
		ticket, _ := sess.board.Get(ticketID)
		res.Handled = s.sessions.applyLocked(ctx, sess, navigation.TicketSelected(ticket))
		res.Snapshot = s.sessions.snapshotLocked(sess)
		return nil
	})
	return res, err
}

// Selected returns a copy of the ticket open in the detail screen.
func (s *TicketService) Selected(sessionID string) (*domain.Ticket, error) {
	var out *domain.Ticket
	err := s.sessions.withSession(sessionID, func(sess *Session) error {
		if sess.state.SelectedTicket == nil {
			return apperrors.NewNotFound("selected ticket", nil)
		}
		out = sess.state.SelectedTicket.Clone()
		return nil
	})
	return out, err
}

// Draft stores the response being composed.
func (s *TicketService) Draft(sessionID, text string) (Snapshot, error) {
	var snap Snapshot
	err := s.sessions.withSession(sessionID, func(sess *Session) error {
		compose, ok := sess.local.(*navigation.ComposeLocal)
		if !ok {
			return apperrors.NewInvalidTransition(string(sess.state.CurrentScreen), "draft_response")
		}
		compose.Draft = text
		snap = s.sessions.snapshotLocked(sess)
		return nil
	})
	return snap, err
}

// Respond sends message, or the stored draft when message is empty, to the selected ticket.
func (s *TicketService) Respond(ctx context.Context, sessionID, message string) (*domain.Ticket, error) {
	var out *domain.Ticket
	err := s.sessions.withSession(sessionID, func(sess *Session) error {
		selected := sess.state.SelectedTicket
		if sess.state.CurrentScreen != domain.ScreenAttendantTicket || selected == nil {
			return apperrors.NewInvalidTransition(string(sess.state.CurrentScreen), "respond")
		}
		compose, _ := sess.local.(*navigation.ComposeLocal)
		if message == "" && compose != nil {
			message = compose.Draft
		}

		now := s.sessions.now()
		ticket, resp, err := sess.board.Respond(selected.ID, message, now)
		switch {
		case errors.Is(err, triage.ErrEmptyResponse):
			return apperrors.NewValidationError("empty response", map[string]any{"message": "A resposta não pode estar vazia"})
		case errors.Is(err, triage.ErrUnknownTicket):
			return apperrors.NewNotFound("ticket", map[string]any{"ticket_id": selected.ID})
		case err != nil:
			return apperrors.NewInternalError(err)
		}
		if compose != nil {
			compose.Draft = ""
		}

		s.persist(ctx, sess.ID, ticket, resp)
		s.sessions.publish(ctx, events.New(events.EventTicketResponded, sess.ID, sess.state.Flow, now, events.TicketRespondedPayload{
			TicketID:    ticket.ID,
			Protocol:    ticket.Protocol,
			BodyPreview: preview(resp.Interaction.Message),
		}))
		if resp.StatusChanged {
			s.sessions.publish(ctx, events.New(events.EventTicketStatusChanged, sess.ID, sess.state.Flow, now, events.TicketStatusChangedPayload{
				TicketID:  ticket.ID,
				OldStatus: resp.OldStatus,
				NewStatus: ticket.Status,
			}))
		}
		out = ticket.Clone()
		return nil
	})
	return out, err
}

// persist writes the response through to the store. The in-session board stays authoritative on failure.
func (s *TicketService) persist(ctx context.Context, sessionID string, ticket *domain.Ticket, resp triage.Response) {
	if s.sessions.store == nil {
		return
	}
	if err := s.sessions.store.RecordResponse(ctx, ticket.ID, resp.Interaction, ticket.Status); err != nil {
		s.sessions.metrics.RecordError("ticket_store", "record_response", apperrors.ToDomainError(err).Code)
		s.sessions.logger.Error("persist ticket response",
			zap.String("session_id", sessionID),
			zap.String("ticket_id", ticket.ID),
			zap.Error(err))
	}
}

func preview(body string) string {
	body = strings.TrimSpace(body)
	r := []rune(body)
	if len(r) > 80 {
		return string(r[:80]) + "..."
	}
	return body
}
