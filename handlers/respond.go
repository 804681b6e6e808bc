package handlers

import (
	"context"
	"errors"
	"log"
	"strconv"

	"pugorugh/models"
	"pugorugh/services"

	"github.com/gofiber/fiber/v2"
)

// ImageURLer resolves a stored image filename to a client URL.
type ImageURLer interface {
	URL(ctx context.Context, filename string) string
}

// DogPayload is the wire form of a dog: the stored fields plus image_url.
type DogPayload struct {
	models.Dog
	ImageURL string `json:"image_url"`
	Status   string `json:"status,omitempty"`
}

func dogPayload(ctx context.Context, images ImageURLer, d models.Dog) DogPayload {
	p := DogPayload{Dog: d}
	if images != nil {
		p.ImageURL = images.URL(ctx, d.ImageFilename)
	}
	return p
}

// serviceError maps service errors onto the HTTP statuses clients expect.
func serviceError(c *fiber.Ctx, err error, what string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": what + " not found"})
	case errors.Is(err, services.ErrLedgerReset):
		log.Printf("❌ [API] Ledger reset failed on %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to reset decisions",
			"cause": err.Error(),
		})
	default:
		log.Printf("❌ [API] Store error on %s %s: %v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load " + what,
			"cause": err.Error(),
		})
	}
}

func badRequest(c *fiber.Ctx, msg string, err error) error {
	body := fiber.Map{"error": msg}
	if err != nil {
		body["cause"] = err.Error()
	}
	return c.Status(fiber.StatusBadRequest).JSON(body)
}

func parsePK(c *fiber.Ctx) (uint, error) {
	pk, err := strconv.ParseUint(c.Params("pk"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(pk), nil
}
