package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/happy-paws/internal/api/dto"
	"github.com/spec-kit/happy-paws/internal/service"
	apperrors "github.com/spec-kit/happy-paws/pkg/util/errorutil"
)

// SupportHandler manages the tutor's support tickets.
type SupportHandler struct {
	support *service.SupportService
}

// NewSupportHandler constructs handler.
func NewSupportHandler(support *service.SupportService) *SupportHandler {
	return &SupportHandler{support: support}
}

// List handles GET /support/tickets.
func (h *SupportHandler) List(c *fiber.Ctx) error {
	principal, err := sessionPrincipal(c)
	if err != nil {
		return err
	}
	tickets, err := h.support.List(principal.SessionID)
	if err != nil {
		return err
	}
	items := make([]dto.SupportTicketResponse, 0, len(tickets))
	for _, t := range tickets {
		items = append(items, supportTicketResponse(t))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Create handles POST /support/tickets.
func (h *SupportHandler) Create(c *fiber.Ctx) error {
	principal, err := sessionPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.SupportTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	ticket, err := h.support.Open(c.UserContext(), principal.SessionID, service.SupportInput{
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": supportTicketResponse(ticket)})
}
