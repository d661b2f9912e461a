package http

import (
	"github.com/Musiitwa-Joel/pixinity-sub001/internal/application"
	"github.com/gofiber/fiber/v2"
)

type CurationHandler struct {
	service *application.CurationService
}

func NewCurationHandler(service *application.CurationService) *CurationHandler {
	return &CurationHandler{service: service}
}

// List returns the cached catalog, filtered by ?q= when present. The catalog
// is fetched from the source on first use.
func (h *CurationHandler) List(c *fiber.Ctx) error {
	items, err := h.service.Search(c.Context(), c.Query("q"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

func (h *CurationHandler) Refresh(c *fiber.Ctx) error {
	if err := h.service.Refresh(c.Context()); err != nil {
		return respondError(c, err)
	}
	items, err := h.service.Items(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

func (h *CurationHandler) Toggle(c *fiber.Ctx) error {
	curated, err := h.service.ToggleCurated(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"id": c.Params("id"), "curated": curated})
}
