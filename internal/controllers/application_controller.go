package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jiruejeta/job-portal/internal/models"
	"github.com/jiruejeta/job-portal/internal/services"
)

type ApplicationController struct {
	apps *services.ApplicationService
}

func NewApplicationController(apps *services.ApplicationService) *ApplicationController {
	return &ApplicationController{apps: apps}
}

// Apply handles POST /api/applications/apply (public).
func (ct *ApplicationController) Apply(c *fiber.Ctx) error {
	var in services.ApplyInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	summary, err := ct.apps.Apply(c.Context(), in)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Application submitted successfully",
		"data":    summary,
	})
}

func (ct *ApplicationController) list(c *fiber.Ctx, status string) error {
	apps, err := ct.apps.List(c.Context(), status)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(apps),
		"data":    apps,
	})
}

// List handles GET /api/applications (admin).
func (ct *ApplicationController) List(c *fiber.Ctx) error {
	return ct.list(c, "")
}

// ListPending handles GET /api/applications/pending (admin).
func (ct *ApplicationController) ListPending(c *fiber.Ctx) error {
	return ct.list(c, models.ApplicationPending)
}

// ListApproved handles GET /api/applications/approved (admin).
func (ct *ApplicationController) ListApproved(c *fiber.Ctx) error {
	return ct.list(c, models.ApplicationApproved)
}

// ListRejected handles GET /api/applications/rejected (admin).
func (ct *ApplicationController) ListRejected(c *fiber.Ctx) error {
	return ct.list(c, models.ApplicationRejected)
}

// Get handles GET /api/applications/:id (admin).
func (ct *ApplicationController) Get(c *fiber.Ctx) error {
	app, err := ct.apps.Get(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    app,
	})
}

// Approve handles PUT /api/applications/:id/approve (admin). The response
// is the only place the generated plaintext password ever appears.
func (ct *ApplicationController) Approve(c *fiber.Ctx) error {
	result, err := ct.apps.Approve(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Application approved successfully. User account created.",
		"data": fiber.Map{
			"application": fiber.Map{
				"id":     result.ApplicationID,
				"status": result.Status,
			},
			"user": fiber.Map{
				"id":       result.UserID,
				"name":     result.Name,
				"username": result.Username,
				"password": result.Password,
				"email":    result.Email,
				"role":     result.Role,
			},
			"employeeId": result.EmployeeID,
			"notice":     "Please save these credentials. They will not be shown again.",
		},
	})
}

// Reject handles PUT /api/applications/:id/reject (admin).
func (ct *ApplicationController) Reject(c *fiber.Ctx) error {
	summary, err := ct.apps.Reject(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Application rejected successfully",
		"data":    summary,
	})
}
