package routes

import (
	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, d Deps, admin, applicant fiber.Handler) {
	users := app.Group("/api/users", d.Protect)

	users.Get("/", admin, d.Users.List)
	users.Put("/:userId/id-approve", admin, d.Users.ApproveID)
	users.Put("/:userId/id-reject", admin, d.Users.RejectID)

	users.Get("/profile", applicant, d.Users.Profile)
	users.Put("/profile", applicant, d.Users.UpdateProfile)
	users.Post("/documents", applicant, d.Users.UploadDocument)
	users.Put("/photo", applicant, d.Users.UploadIDPhoto)
}
