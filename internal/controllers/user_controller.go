package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jiruejeta/job-portal/internal/middleware"
	"github.com/jiruejeta/job-portal/internal/repository"
	"github.com/jiruejeta/job-portal/internal/services"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

// Profile handles GET /api/users/profile.
func (ct *UserController) Profile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	profile, err := ct.users.Profile(c.Context(), user.ID.Hex())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    profile,
	})
}

type updateProfileRequest struct {
	FaydaID    string `json:"faydaId"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Department string `json:"department"`
}

// UpdateProfile handles PUT /api/users/profile.
func (ct *UserController) UpdateProfile(c *fiber.Ctx) error {
	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	user := middleware.CurrentUser(c)
	profile, err := ct.users.UpdateProfile(c.Context(), user.ID.Hex(), repository.ProfileUpdate{
		FaydaID:    req.FaydaID,
		Phone:      req.Phone,
		Address:    req.Address,
		Department: req.Department,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Profile updated successfully",
		"data":    profile,
	})
}

type uploadDocumentRequest struct {
	DocumentURL  string `json:"documentUrl"`
	DocumentType string `json:"documentType"`
}

// UploadDocument handles POST /api/users/documents.
func (ct *UserController) UploadDocument(c *fiber.Ctx) error {
	var req uploadDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	user := middleware.CurrentUser(c)
	docs, err := ct.users.AddDocument(c.Context(), user.ID.Hex(), req.DocumentURL, req.DocumentType)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Document uploaded successfully",
		"data":    docs,
	})
}

type idPhotoRequest struct {
	Photo string `json:"photo"`
}

// UploadIDPhoto handles PUT /api/users/photo. A fresh photo always puts
// the badge back into pending review.
func (ct *UserController) UploadIDPhoto(c *fiber.Ctx) error {
	var req idPhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	user := middleware.CurrentUser(c)
	profile, err := ct.users.UploadIDPhoto(c.Context(), user.ID.Hex(), req.Photo)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "ID photo uploaded successfully",
		"data":    profile,
	})
}

// ApproveID handles PUT /api/users/:userId/id-approve (admin).
func (ct *UserController) ApproveID(c *fiber.Ctx) error {
	profile, err := ct.users.ApproveID(c.Context(), c.Params("userId"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "ID approved successfully",
		"data":    profile,
	})
}

type rejectIDRequest struct {
	Reason string `json:"reason"`
}

// RejectID handles PUT /api/users/:userId/id-reject (admin). The reason is
// optional; an empty body gets the default.
func (ct *UserController) RejectID(c *fiber.Ctx) error {
	var req rejectIDRequest
	_ = c.BodyParser(&req)

	profile, err := ct.users.RejectID(c.Context(), c.Params("userId"), req.Reason)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "ID rejected",
		"data":    profile,
	})
}

// List handles GET /api/users (admin). Password fields never appear here.
func (ct *UserController) List(c *fiber.Ctx) error {
	users, err := ct.users.List(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(users),
		"data":    users,
	})
}
