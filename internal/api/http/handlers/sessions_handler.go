package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/happy-paws/internal/api/dto"
	"github.com/spec-kit/happy-paws/internal/auth"
	"github.com/spec-kit/happy-paws/internal/domain"
	"github.com/spec-kit/happy-paws/internal/navigation"
	"github.com/spec-kit/happy-paws/internal/notify"
	"github.com/spec-kit/happy-paws/internal/service"
	apperrors "github.com/spec-kit/happy-paws/pkg/util/errorutil"
)

// SessionsHandler exposes the session lifecycle and the raw navigation endpoint.
type SessionsHandler struct {
	auth     *service.AuthService
	sessions *service.SessionService
	tickets  *service.TicketService
	inbox    *notify.Inbox
}

// NewSessionsHandler constructs handler.
func NewSessionsHandler(authService *service.AuthService, sessions *service.SessionService, tickets *service.TicketService, inbox *notify.Inbox) *SessionsHandler {
	return &SessionsHandler{auth: authService, sessions: sessions, tickets: tickets, inbox: inbox}
}

// Create handles POST /sessions.
func (h *SessionsHandler) Create(c *fiber.Ctx) error {
	issued, err := h.auth.StartSession(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"session": sessionResponse(issued.Snapshot),
			"auth":    dto.AuthResponse{Token: issued.Token.Token, ExpiresAt: issued.ExpiresAt},
		},
	})
}

// Get handles GET /session.
func (h *SessionsHandler) Get(c *fiber.Ctx) error {
	principal, err := sessionPrincipal(c)
	if err != nil {
		return err
	}
	snap, err := h.sessions.Snapshot(principal.SessionID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": sessionResponse(snap)})
}

// Delete handles DELETE /session.
func (h *SessionsHandler) Delete(c *fiber.Ctx) error {
	principal, err := sessionPrincipal(c)
	if err != nil {
		return err
	}
	h.sessions.End(principal.SessionID)
	return c.SendStatus(http.StatusNoContent)
}

// Dispatch handles POST /session/events.
func (h *SessionsHandler) Dispatch(c *fiber.Ctx) error {
	principal, err := sessionPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", map[string]any{"name": "required"})
	}

	name := navigation.EventName(req.Name)
	if name == navigation.EventTicketSelected {
		res, err := h.tickets.DispatchSelect(c.UserContext(), principal.SessionID, req.TicketID)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"data": resultResponse(res)})
	}

	ev := navigation.Event{Name: name, Tab: req.Tab, Flow: req.Flow}
	res, err := h.sessions.Dispatch(c.UserContext(), principal.SessionID, ev)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": resultResponse(res)})
}

// Login handles POST /session/login.
func (h *SessionsHandler) Login(c *fiber.Ctx) error {
	principal, err := sessionPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	snap, _, err := h.auth.Login(c.UserContext(), principal.SessionID, service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Flow:     req.Flow,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusAccepted).JSON(fiber.Map{"data": sessionResponse(snap)})
}

// Register handles POST /session/register.
func (h *SessionsHandler) Register(c *fiber.Ctx) error {
	principal, err := sessionPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	snap, err := h.auth.Register(c.UserContext(), principal.SessionID, service.RegisterInput{
		Role:         req.Role,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Password:     req.Password,
		PetName:      req.PetName,
		PricePerHour: req.PricePerHour,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": sessionResponse(snap)})
}

// Logout handles POST /session/logout.
func (h *SessionsHandler) Logout(c *fiber.Ctx) error {
	principal, err := sessionPrincipal(c)
	if err != nil {
		return err
	}
	res, err := h.auth.Logout(c.UserContext(), principal.SessionID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": resultResponse(res)})
}

// Notices handles GET /session/notices.
func (h *SessionsHandler) Notices(c *fiber.Ctx) error {
	principal, err := sessionPrincipal(c)
	if err != nil {
		return err
	}
	var notices []domain.Notice
	if h.inbox != nil {
		notices = h.inbox.Drain(principal.SessionID)
	}
	return c.JSON(fiber.Map{"data": noticeResponses(notices)})
}

func sessionPrincipal(c *fiber.Ctx) (*auth.Principal, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return nil, apperrors.NewUnauthorized("session required")
	}
	return principal, nil
}
