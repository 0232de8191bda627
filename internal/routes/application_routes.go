package routes

import (
	"github.com/gofiber/fiber/v2"
)

func SetupApplicationRoutes(app *fiber.App, d Deps, admin fiber.Handler) {
	apps := app.Group("/api/applications")

	apps.Post("/apply", d.Applications.Apply)

	// Static paths before the :id wildcard.
	apps.Get("/pending", d.Protect, admin, d.Applications.ListPending)
	apps.Get("/approved", d.Protect, admin, d.Applications.ListApproved)
	apps.Get("/rejected", d.Protect, admin, d.Applications.ListRejected)
	apps.Get("/", d.Protect, admin, d.Applications.List)
	apps.Get("/:id", d.Protect, admin, d.Applications.Get)

	apps.Put("/:id/approve", d.Protect, admin, d.Applications.Approve)
	apps.Put("/:id/reject", d.Protect, admin, d.Applications.Reject)
}
