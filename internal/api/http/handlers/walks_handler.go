package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/happy-paws/internal/api/dto"
	"github.com/spec-kit/happy-paws/internal/service"
	apperrors "github.com/spec-kit/happy-paws/pkg/util/errorutil"
)

// WalksHandler exposes the booking and walk actions.
type WalksHandler struct {
	walks *service.WalkService
}

// NewWalksHandler constructs handler.
func NewWalksHandler(walks *service.WalkService) *WalksHandler {
	return &WalksHandler{walks: walks}
}

// ConfirmSchedule handles POST /session/schedule.
func (h *WalksHandler) ConfirmSchedule(c *fiber.Ctx) error {
	principal, err := sessionPrincipal(c)
	if err != nil {
		return err
	}
	snap, _, err := h.walks.ConfirmSchedule(c.UserContext(), principal.SessionID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusAccepted).JSON(fiber.Map{"data": sessionResponse(snap)})
}

// Start handles POST /session/walk/start.
func (h *WalksHandler) Start(c *fiber.Ctx) error {
	principal, err := sessionPrincipal(c)
	if err != nil {
		return err
	}
	snap, _, err := h.walks.StartWalk(c.UserContext(), principal.SessionID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusAccepted).JSON(fiber.Map{"data": sessionResponse(snap)})
}

// End handles POST /session/walk/end.
func (h *WalksHandler) End(c *fiber.Ctx) error {
	principal, err := sessionPrincipal(c)
	if err != nil {
		return err
	}
	snap, task, err := h.walks.EndWalk(c.UserContext(), principal.SessionID)
	if err != nil {
		return err
	}
	status := http.StatusOK
	if task != nil {
		status = http.StatusAccepted
	}
	return c.Status(status).JSON(fiber.Map{"data": sessionResponse(snap)})
}

// Pause handles POST /session/walk/pause.
func (h *WalksHandler) Pause(c *fiber.Ctx) error {
	principal, err := sessionPrincipal(c)
	if err != nil {
		return err
	}
	snap, err := h.walks.TogglePause(principal.SessionID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": sessionResponse(snap)})
}

// DraftPhoto handles PUT /session/photos/draft.
func (h *WalksHandler) DraftPhoto(c *fiber.Ctx) error {
	principal, err := sessionPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.PhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	snap, err := h.walks.DraftPhoto(principal.SessionID, service.PhotoInput{Photo: req.Photo, Caption: req.Caption})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": sessionResponse(snap)})
}

// PostPhoto handles POST /session/photos.
func (h *WalksHandler) PostPhoto(c *fiber.Ctx) error {
	principal, err := sessionPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.PhotoRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return apperrors.NewValidationError("invalid payload", nil)
		}
	}
	snap, _, err := h.walks.PostPhoto(c.UserContext(), principal.SessionID, service.PhotoInput{Photo: req.Photo, Caption: req.Caption})
	if err != nil {
		return err
	}
	return c.Status(http.StatusAccepted).JSON(fiber.Map{"data": sessionResponse(snap)})
}
