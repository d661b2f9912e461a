package http

import (
	"github.com/Musiitwa-Joel/pixinity-sub001/internal/application"
	"github.com/gofiber/fiber/v2"
)

// HomeHandler serves the public render feed: visible sections in order, with
// the showcase section carrying its derived featured photo ids.
type HomeHandler struct {
	composer *application.ComposerService
}

func NewHomeHandler(composer *application.ComposerService) *HomeHandler {
	return &HomeHandler{composer: composer}
}

func (h *HomeHandler) GetHomepage(c *fiber.Ctx) error {
	sections, err := h.composer.PublicSections(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"sections": sections})
}
