package routes

import (
	"github.com/gofiber/fiber/v2"
)

func SetupEmployeeRoutes(app *fiber.App, d Deps, admin, applicant fiber.Handler) {
	emp := app.Group("/api/employee", d.Protect)

	emp.Get("/profile", applicant, d.Employees.Profile)
	emp.Post("/photo", applicant, d.Employees.UploadPhoto)

	emp.Get("/all", admin, d.Employees.List)
	emp.Get("/:id", admin, d.Employees.Get)
}
