package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/spec-kit/happy-paws/internal/domain"
	"github.com/spec-kit/happy-paws/internal/events"
	apperrors "github.com/spec-kit/happy-paws/pkg/util/errorutil"
)

// SupportService manages the tutor's own support cases.
type SupportService struct {
	sessions *SessionService
}

// NewSupportService builds the service.
func NewSupportService(sessions *SessionService) *SupportService {
	return &SupportService{sessions: sessions}
}

// SupportInput is the new-ticket dialog.
type SupportInput struct {
	Category    domain.TicketType
	Description string
}

// List returns the session's support tickets, newest first.
func (s *SupportService) List(sessionID string) ([]domain.SupportTicket, error) {
	var out []domain.SupportTicket
	err := s.sessions.withSession(sessionID, func(sess *Session) error {
		out = append([]domain.SupportTicket(nil), sess.support...)
		return nil
	})
	return out, err
}

// Open files a new support ticket from the support screen.
func (s *SupportService) Open(ctx context.Context, sessionID string, in SupportInput) (domain.SupportTicket, error) {
	var created domain.SupportTicket
	err := s.sessions.withSession(sessionID, func(sess *Session) error {
		if err := requireScreen(sess, domain.ScreenSupport, "open_ticket"); err != nil {
			return err
		}
		description := strings.TrimSpace(in.Description)
		fields := map[string]any{}
		if !in.Category.Valid() {
			fields["category"] = "Selecione uma categoria"
		}
		if description == "" {
			fields["description"] = "Descreva o problema"
		}
		if len(fields) > 0 {
			return apperrors.NewValidationError("invalid support ticket", fields)
		}

		now := s.sessions.now()
		created = domain.SupportTicket{
			ID:       strings.ReplaceAll(uuid.NewString(), "-", "")[:8],
			Category: in.Category,
			Status:   domain.SupportStatusOpen,
			Title:    supportTitle(description),
			Date:     now.Format("02/01/2006"),
		}
		sess.support = append([]domain.SupportTicket{created}, sess.support...)

		s.sessions.notifyLocked(ctx, sess, domain.Notice{
			Title:       "Chamado criado",
			Description: "Protocolo: #" + created.ID,
		})
		s.sessions.publish(ctx, events.New(events.EventSupportTicketOpened, sess.ID, sess.state.Flow, now, events.SupportTicketOpenedPayload{
			TicketID: created.ID,
			Category: created.Category,
			Title:    created.Title,
		}))
		return nil
	})
	return created, err
}

func supportTitle(description string) string {
	r := []rune(description)
	if len(r) > 20 {
		r = r[:20]
	}
	return string(r) + "..."
}
