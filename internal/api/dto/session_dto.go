package dto

import (
	"time"

	"github.com/spec-kit/happy-paws/internal/domain"
)

// AuthResponse standard response for session creation.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Flow     domain.Flow `json:"flow"`
}

// RegisterRequest payload for the registration form.
type RegisterRequest struct {
	Role         domain.Flow `json:"role"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"`
	Password     string      `json:"password"`
	PetName      string      `json:"pet_name"`
	PricePerHour int         `json:"price_per_hour"`
}

// EventRequest is a raw navigation event.
type EventRequest struct {
	Name     string      `json:"name"`
	Tab      domain.Tab  `json:"tab"`
	Flow     domain.Flow `json:"flow"`
	TicketID string      `json:"ticket_id"`
}

// PhotoRequest payload for the photo-post form.
type PhotoRequest struct {
	Photo   string `json:"photo"`
	Caption string `json:"caption"`
}

// ScreenResponse describes the mounted screen.
type ScreenResponse struct {
	Name     domain.Screen `json:"name"`
	Title    string        `json:"title"`
	Audience string        `json:"audience"`
	TabBar   bool          `json:"tab_bar"`
	Back     domain.Screen `json:"back,omitempty"`
}

// ProfileResponse is the registered profile without credentials.
type ProfileResponse struct {
	Role         domain.Flow `json:"role"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"`
	PetName      string      `json:"pet_name,omitempty"`
	PricePerHour int         `json:"price_per_hour,omitempty"`
}

// WalkResponse is the walk timer.
type WalkResponse struct {
	ElapsedSeconds int64  `json:"elapsed_seconds"`
	Elapsed        string `json:"elapsed"`
	Paused         bool   `json:"paused"`
}

// DashboardResponse holds the remembered dashboard inputs.
type DashboardResponse struct {
	Search string            `json:"search"`
	Type   domain.TicketType `json:"type,omitempty"`
}

// PhotoFormResponse is the photo-post form state.
type PhotoFormResponse struct {
	HasPhoto bool   `json:"has_photo"`
	Caption  string `json:"caption"`
	Posting  bool   `json:"posting"`
}

// SessionResponse is the full session view.
type SessionResponse struct {
	ID                      string             `json:"id"`
	Screen                  ScreenResponse     `json:"screen"`
	ActiveTab               domain.Tab         `json:"active_tab"`
	Flow                    domain.Flow        `json:"flow,omitempty"`
	WalkNotificationPending bool               `json:"walk_notification_pending"`
	SelectedTicket          *TicketDetail      `json:"selected_ticket,omitempty"`
	Profile                 *ProfileResponse   `json:"profile,omitempty"`
	Walk                    *WalkResponse      `json:"walk,omitempty"`
	Dashboard               *DashboardResponse `json:"dashboard,omitempty"`
	Draft                   string             `json:"draft,omitempty"`
	RegisterErrors          map[string]string  `json:"register_errors,omitempty"`
	Photo                   *PhotoFormResponse `json:"photo,omitempty"`
	Handled                 *bool              `json:"handled,omitempty"`
}

// NoticeResponse is one toast.
type NoticeResponse struct {
	Title       string               `json:"title"`
	Description string               `json:"description,omitempty"`
	Variant     domain.NoticeVariant `json:"variant"`
	CreatedAt   time.Time            `json:"created_at"`
}
