package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jiruejeta/job-portal/internal/middleware"
	"github.com/jiruejeta/job-portal/internal/services"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login.
func (ct *AuthController) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	result, err := ct.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Login successful",
		"data":    result,
	})
}

type createAdminRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateAdmin handles POST /api/auth/create-admin, the one-time bootstrap.
func (ct *AuthController) CreateAdmin(c *fiber.Ctx) error {
	var req createAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	admin, err := ct.auth.CreateAdmin(c.Context(), req.Name, req.Username, req.Password)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Admin created successfully",
		"data": fiber.Map{
			"_id":      admin.ID.Hex(),
			"name":     admin.Name,
			"username": admin.Username,
			"role":     admin.Role,
		},
	})
}

// Me handles GET /api/auth/me.
func (ct *AuthController) Me(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	profile, err := ct.auth.Me(c.Context(), user.ID.Hex())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    profile,
	})
}
