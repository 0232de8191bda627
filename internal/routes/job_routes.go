package routes

import (
	"github.com/gofiber/fiber/v2"
)

func SetupJobRoutes(app *fiber.App, d Deps, admin fiber.Handler) {
	jobs := app.Group("/api/jobs")

	jobs.Get("/", d.Jobs.List)
	jobs.Get("/:id", d.Jobs.Get)

	jobs.Post("/", d.Protect, admin, d.Jobs.Create)
	jobs.Put("/:id", d.Protect, admin, d.Jobs.Update)
	jobs.Delete("/:id", d.Protect, admin, d.Jobs.Delete)
}
