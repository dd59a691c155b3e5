package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kinwise-app/kinwise/internal/coaching"
)

type Handler struct {
	runner     *coaching.Runner
	secretKey  []byte
	cronSecret string
}

func NewHandler(runner *coaching.Runner, secretKey string, cronSecret string) *Handler {
	return &Handler{
		runner:     runner,
		secretKey:  []byte(secretKey),
		cronSecret: cronSecret,
	}
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}
