package http

import (
	"log"

	"github.com/Musiitwa-Joel/pixinity-sub001/internal/application"
	"github.com/Musiitwa-Joel/pixinity-sub001/internal/email"
	"github.com/gofiber/fiber/v2"
)

type SectionHandler struct {
	service     *application.SectionService
	emailClient *email.Client // nil when SMTP is not configured
	notifyEmail string
}

func NewSectionHandler(service *application.SectionService, emailClient *email.Client, notifyEmail string) *SectionHandler {
	return &SectionHandler{
		service:     service,
		emailClient: emailClient,
		notifyEmail: notifyEmail,
	}
}

func (h *SectionHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.service.Sections())
}

func (h *SectionHandler) Create(c *fiber.Ctx) error {
	type Request struct {
		Type string `json:"type"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	section, err := h.service.Create(req.Type)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(section)
}

func (h *SectionHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusOK)
}

func (h *SectionHandler) UpdateVisibility(c *fiber.Ctx) error {
	type Request struct {
		Visible bool `json:"visible"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.service.SetVisible(c.Params("id"), req.Visible); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Visibility updated"})
}

func (h *SectionHandler) Rename(c *fiber.Ctx) error {
	type Request struct {
		Title string `json:"title"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.service.Rename(c.Params("id"), req.Title); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Title updated"})
}

func (h *SectionHandler) Move(c *fiber.Ctx) error {
	type Request struct {
		Direction string `json:"direction"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if !application.ValidMoveDirection(req.Direction) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Direction must be up or down"})
	}

	if err := h.service.Move(c.Params("id"), application.MoveDirection(req.Direction)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.service.Sections())
}

func (h *SectionHandler) Reload(c *fiber.Ctx) error {
	if err := h.service.LoadAll(c.Context()); err != nil {
		return respondError(c, err)
	}
	return c.JSON(h.service.Sections())
}

func (h *SectionHandler) Save(c *fiber.Ctx) error {
	if err := h.service.SaveAll(c.Context()); err != nil {
		return respondError(c, err)
	}
	h.notifyPublished()
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Homepage saved"})
}

// notifyPublished emails the site owner that the homepage changed. Best
// effort: failures are logged, never surfaced to the operator, and the send
// runs to completion even after the request context is gone.
func (h *SectionHandler) notifyPublished() {
	if h.emailClient == nil || h.notifyEmail == "" {
		return
	}
	go func() {
		if err := h.emailClient.SendHomepagePublished(h.notifyEmail); err != nil {
			log.Printf("Failed to send publish notification: %v", err)
		}
	}()
}
