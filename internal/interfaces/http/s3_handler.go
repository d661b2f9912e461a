package http

import (
	"fmt"
	"log"

	services "github.com/Musiitwa-Joel/pixinity-sub001/internal/service"
	"github.com/gofiber/fiber/v2"
)

type S3Handler struct {
	service *services.S3Service
}

func NewS3Handler(service *services.S3Service) *S3Handler {
	return &S3Handler{
		service: service,
	}
}

// HandleUploadImage stores an image and returns the URL to paste into a
// section field (background, category image, avatar).
func (h *S3Handler) HandleUploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		log.Printf("Failed to retrieve file %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to read uploaded file: %v", err),
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Failed to open file %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to open uploaded file: %v", err),
		})
	}
	defer file.Close()

	url, err := h.service.UploadImage(file, fileHeader)
	if err != nil {
		log.Printf("Failed to upload file %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("Failed to upload file: %v", err),
		})
	}

	return c.JSON(fiber.Map{
		"url": url,
	})
}
