package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/happy-paws/internal/api/dto"
	"github.com/spec-kit/happy-paws/internal/service"
	apperrors "github.com/spec-kit/happy-paws/pkg/util/errorutil"
)

// CatalogHandler serves walkers, pets and achievements.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Walkers handles GET /walkers.
func (h *CatalogHandler) Walkers(c *fiber.Ctx) error {
	var q dto.WalkerQuery
	if err := c.QueryParser(&q); err != nil {
		return apperrors.NewValidationError("invalid query", nil)
	}
	walkers, err := h.catalog.Walkers(service.WalkerQuery{Query: q.Query, Size: q.Size})
	if err != nil {
		return err
	}
	items := make([]dto.WalkerResponse, 0, len(walkers))
	for _, w := range walkers {
		items = append(items, walkerResponse(w))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Walker handles GET /walkers/:id.
func (h *CatalogHandler) Walker(c *fiber.Ctx) error {
	w, err := h.catalog.Walker(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": walkerResponse(w)})
}

// Pets handles GET /pets.
func (h *CatalogHandler) Pets(c *fiber.Ctx) error {
	pets := h.catalog.Pets()
	items := make([]dto.PetResponse, 0, len(pets))
	for _, p := range pets {
		items = append(items, dto.PetResponse{
			ID:     p.ID,
			Name:   p.Name,
			Photo:  p.Photo,
			Breed:  p.Breed,
			Age:    p.Age,
			Size:   p.Size,
			Weight: p.Weight,
			Alerts: p.Alerts,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

// Achievements handles GET /achievements.
func (h *CatalogHandler) Achievements(c *fiber.Ctx) error {
	achievements := h.catalog.Achievements()
	items := make([]dto.AchievementResponse, 0, len(achievements))
	for _, a := range achievements {
		items = append(items, dto.AchievementResponse{Title: a.Title, Description: a.Description, Unlocked: a.Unlocked})
	}
	return c.JSON(fiber.Map{"data": items})
}

// SharePet handles POST /pets/share.
func (h *CatalogHandler) SharePet(c *fiber.Ctx) error {
	principal, err := sessionPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.SharePetRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	snap, err := h.catalog.SharePet(c.UserContext(), principal.SessionID, req.Email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": sessionResponse(snap)})
}
