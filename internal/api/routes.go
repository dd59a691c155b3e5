package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	cron := api.Group("/cron", handler.CronAuthorized)
	cron.Post("/coaching/:slot", handler.RunCoachingSlot)

	admin := api.Group("/admin", handler.AdminRequired)
	admin.Post("/coaching/trigger", handler.TriggerCoaching)
	admin.Get("/coaching/preview/:memberID", handler.PreviewCoaching)
}
