package http

import (
	"errors"

	"github.com/Musiitwa-Joel/pixinity-sub001/internal/application"
	"github.com/Musiitwa-Joel/pixinity-sub001/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// respondError maps service errors onto HTTP statuses. Anything outside the
// known taxonomy is a 500.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidSectionType):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidPayload):
		status = fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrToggleInFlight):
		status = fiber.StatusConflict
	case errors.Is(err, application.ErrNoActiveEdit):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
