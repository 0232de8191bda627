package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jiruejeta/job-portal/internal/controllers"
	"github.com/jiruejeta/job-portal/internal/middleware"
	"github.com/jiruejeta/job-portal/internal/models"
)

// Deps bundles everything route registration needs.
type Deps struct {
	Auth         *controllers.AuthController
	Jobs         *controllers.JobController
	Applications *controllers.ApplicationController
	Employees    *controllers.EmployeeController
	Users        *controllers.UserController
	Protect      fiber.Handler
}

func Register(app *fiber.App, d Deps) {
	admin := middleware.Authorize(models.RoleAdmin)
	applicant := middleware.Authorize(models.RoleApplicant)

	SetupAuthRoutes(app, d)
	SetupJobRoutes(app, d, admin)
	SetupApplicationRoutes(app, d, admin)
	SetupEmployeeRoutes(app, d, admin, applicant)
	SetupUserRoutes(app, d, admin, applicant)
}
