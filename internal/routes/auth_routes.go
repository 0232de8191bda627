package routes

import (
	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, d Deps) {
	auth := app.Group("/api/auth")

	auth.Post("/login", d.Auth.Login)
	auth.Post("/create-admin", d.Auth.CreateAdmin)
	auth.Get("/me", d.Protect, d.Auth.Me)
}
