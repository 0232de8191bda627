package controllers

import (
	"errors"
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/jiruejeta/job-portal/internal/apperr"
)

// fail maps a service error onto the response envelope. Taxonomy errors
// keep their message; anything else is a 500 whose detail is only echoed
// outside production.
func fail(c *fiber.Ctx, err error) error {
	status := apperr.StatusCode(err)

	var e *apperr.Error
	message := "Something went wrong!"
	if errors.As(err, &e) {
		message = e.Message
	} else if os.Getenv("APP_ENV") != "production" {
		message = err.Error()
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}
