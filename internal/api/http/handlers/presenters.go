package handlers

import (
	"fmt"
	"time"

	"github.com/spec-kit/happy-paws/internal/api/dto"
	"github.com/spec-kit/happy-paws/internal/domain"
	"github.com/spec-kit/happy-paws/internal/service"
)

func sessionResponse(snap service.Snapshot) dto.SessionResponse {
	resp := dto.SessionResponse{
		ID: snap.SessionID,
		Screen: dto.ScreenResponse{
			Name:     snap.State.CurrentScreen,
			Title:    snap.Screen.Title,
			Audience: string(snap.Screen.Audience),
			TabBar:   snap.Screen.TabBar,
			Back:     snap.Screen.Back,
		},
		ActiveTab:               snap.State.ActiveTab,
		Flow:                    snap.State.Flow,
		WalkNotificationPending: snap.State.WalkNotificationPending,
		Draft:                   snap.Draft,
		RegisterErrors:          snap.Register,
	}
	if snap.State.SelectedTicket != nil {
		d := ticketDetail(snap.State.SelectedTicket)
		resp.SelectedTicket = &d
	}
	if p := snap.Profile; p != nil {
		resp.Profile = &dto.ProfileResponse{
			Role:         p.Role,
			Name:         p.Name,
			Email:        p.Email,
			Phone:        p.Phone,
			PetName:      p.PetName,
			PricePerHour: p.PricePerHour,
		}
	}
	if w := snap.Walk; w != nil {
		resp.Walk = &dto.WalkResponse{
			ElapsedSeconds: int64(w.Elapsed / time.Second),
			Elapsed:        formatElapsed(w.Elapsed),
			Paused:         w.Paused,
		}
	}
	if d := snap.Dashboard; d != nil {
		resp.Dashboard = &dto.DashboardResponse{Search: d.Search, Type: d.Filter}
	}
	if p := snap.Photo; p != nil {
		resp.Photo = &dto.PhotoFormResponse{HasPhoto: p.Photo != "", Caption: p.Caption, Posting: p.Posting}
	}
	return resp
}

func resultResponse(res service.Result) dto.SessionResponse {
	resp := sessionResponse(res.Snapshot)
	handled := res.Handled
	resp.Handled = &handled
	return resp
}

// formatElapsed renders a walk timer as MM:SS.
func formatElapsed(d time.Duration) string {
	s := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

func ticketSummary(t *domain.Ticket) dto.TicketSummary {
	return dto.TicketSummary{
		ID:              t.ID,
		Protocol:        t.Protocol,
		Type:            t.Type,
		Subject:         t.Subject,
		Status:          t.Status,
		WaitTime:        t.WaitTime,
		UserName:        t.UserName,
		CreatedAt:       t.CreatedAt,
		AttachmentCount: len(t.Attachments),
	}
}

func ticketDetail(t *domain.Ticket) dto.TicketDetail {
	detail := dto.TicketDetail{
		TicketSummary: ticketSummary(t),
		Description:   t.Description,
		Attachments:   make([]dto.AttachmentResponse, 0, len(t.Attachments)),
		Interactions:  make([]dto.InteractionResponse, 0, len(t.Interactions)),
	}
	for _, a := range t.Attachments {
		detail.Attachments = append(detail.Attachments, dto.AttachmentResponse{Name: a.Name, URL: a.URL})
	}
	for _, in := range t.Interactions {
		detail.Interactions = append(detail.Interactions, dto.InteractionResponse{
			Author:      in.Author,
			Message:     in.Message,
			Timestamp:   in.Timestamp,
			IsAttendant: in.FromAttendant(),
		})
	}
	return detail
}

func noticeResponses(notices []domain.Notice) []dto.NoticeResponse {
	out := make([]dto.NoticeResponse, 0, len(notices))
	for _, n := range notices {
		out = append(out, dto.NoticeResponse{
			Title:       n.Title,
			Description: n.Description,
			Variant:     n.Variant,
			CreatedAt:   n.CreatedAt,
		})
	}
	return out
}

func supportTicketResponse(t domain.SupportTicket) dto.SupportTicketResponse {
	return dto.SupportTicketResponse{
		ID:       t.ID,
		Protocol: "#" + t.ID,
		Category: t.Category,
		Status:   t.Status,
		Title:    t.Title,
		Date:     t.Date,
	}
}

func walkerResponse(w domain.Walker) dto.WalkerResponse {
	return dto.WalkerResponse{
		ID:            w.ID,
		Name:          w.Name,
		Photo:         w.Photo,
		Rating:        w.Rating,
		Reviews:       w.Reviews,
		PricePerHour:  w.PricePerHour,
		Neighborhood:  w.Neighborhood,
		AcceptedSizes: w.AcceptedSizes,
		Verified:      w.Verified,
		MaxDogs:       w.MaxDogs,
	}
}
