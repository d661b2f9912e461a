package http

import (
	"github.com/Musiitwa-Joel/pixinity-sub001/internal/application"
	"github.com/gofiber/fiber/v2"
)

// EditorHandler exposes the staged edit session lifecycle: begin, apply
// intents, commit, cancel.
type EditorHandler struct {
	composer *application.ComposerService
}

func NewEditorHandler(composer *application.ComposerService) *EditorHandler {
	return &EditorHandler{composer: composer}
}

func (h *EditorHandler) Begin(c *fiber.Ctx) error {
	staged, err := h.composer.BeginEdit(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"content": staged})
}

func (h *EditorHandler) ApplyIntent(c *fiber.Ctx) error {
	var intent application.EditIntent
	if err := c.BodyParser(&intent); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	staged, err := h.composer.ApplyIntent(c.Params("id"), intent)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"content": staged})
}

func (h *EditorHandler) Commit(c *fiber.Ctx) error {
	if err := h.composer.CommitEdit(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Changes saved"})
}

func (h *EditorHandler) Cancel(c *fiber.Ctx) error {
	h.composer.CancelEdit(c.Params("id"))
	return c.SendStatus(fiber.StatusOK)
}
