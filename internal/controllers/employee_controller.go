package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jiruejeta/job-portal/internal/middleware"
	"github.com/jiruejeta/job-portal/internal/services"
)

type EmployeeController struct {
	employees *services.EmployeeService
}

func NewEmployeeController(employees *services.EmployeeService) *EmployeeController {
	return &EmployeeController{employees: employees}
}

// Profile handles GET /api/employee/profile (applicant).
func (ct *EmployeeController) Profile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	emp, err := ct.employees.Profile(c.Context(), user.ID.Hex())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    emp,
	})
}

type uploadPhotoRequest struct {
	Photo string `json:"photo"`
}

// UploadPhoto handles POST /api/employee/photo (applicant). The badge QR
// is regenerated together with the stored photo.
func (ct *EmployeeController) UploadPhoto(c *fiber.Ctx) error {
	var req uploadPhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	user := middleware.CurrentUser(c)
	emp, err := ct.employees.UploadPhoto(c.Context(), user.ID.Hex(), req.Photo)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Photo uploaded successfully",
		"data": fiber.Map{
			"photo":  emp.Photo,
			"qrCode": emp.QRCode,
		},
	})
}

// List handles GET /api/employee/all (admin).
func (ct *EmployeeController) List(c *fiber.Ctx) error {
	emps, err := ct.employees.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(emps),
		"data":    emps,
	})
}

// Get handles GET /api/employee/:id (admin).
func (ct *EmployeeController) Get(c *fiber.Ctx) error {
	emp, err := ct.employees.Get(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    emp,
	})
}
