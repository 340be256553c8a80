package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/happy-paws/internal/api/dto"
	"github.com/spec-kit/happy-paws/internal/service"
	apperrors "github.com/spec-kit/happy-paws/pkg/util/errorutil"
)

// AttendantHandler handles the attendant dashboard and ticket detail endpoints.
type AttendantHandler struct {
	tickets *service.TicketService
}

// NewAttendantHandler constructs handler.
func NewAttendantHandler(tickets *service.TicketService) *AttendantHandler {
	return &AttendantHandler{tickets: tickets}
}

// List handles GET /attendant/tickets.
func (h *AttendantHandler) List(c *fiber.Ctx) error {
	principal, err := sessionPrincipal(c)
	if err != nil {
		return err
	}
	var q dto.TicketListQuery
	if err := c.QueryParser(&q); err != nil {
		return apperrors.NewValidationError("invalid query", nil)
	}
	tickets, err := h.tickets.List(principal.SessionID, service.TicketFilter{Search: q.Search, Type: q.Type})
	if err != nil {
		return err
	}
	items := make([]dto.TicketSummary, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, ticketSummary(t))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Select handles POST /attendant/tickets/:id/select.
func (h *AttendantHandler) Select(c *fiber.Ctx) error {
	principal, err := sessionPrincipal(c)
	if err != nil {
		return err
	}
	snap, err := h.tickets.Select(c.UserContext(), principal.SessionID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": sessionResponse(snap)})
}

// Selected handles GET /attendant/tickets/selected.
func (h *AttendantHandler) Selected(c *fiber.Ctx) error {
	principal, err := sessionPrincipal(c)
	if err != nil {
		return err
	}
	ticket, err := h.tickets.Selected(principal.SessionID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": ticketDetail(ticket)})
}

// Draft handles PUT /attendant/tickets/selected/draft.
func (h *AttendantHandler) Draft(c *fiber.Ctx) error {
	principal, err := sessionPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.DraftRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	snap, err := h.tickets.Draft(principal.SessionID, req.Draft)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": sessionResponse(snap)})
}

// Respond handles POST /attendant/tickets/selected/responses.
func (h *AttendantHandler) Respond(c *fiber.Ctx) error {
	principal, err := sessionPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.RespondRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return apperrors.NewValidationError("invalid payload", nil)
		}
	}
	ticket, err := h.tickets.Respond(c.UserContext(), principal.SessionID, req.Message)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": ticketDetail(ticket)})
}
