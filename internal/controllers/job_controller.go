package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jiruejeta/job-portal/internal/middleware"
	"github.com/jiruejeta/job-portal/internal/models"
	"github.com/jiruejeta/job-portal/internal/repository"
	"github.com/jiruejeta/job-portal/internal/services"
)

type JobController struct {
	jobs services.JobStore
}

func NewJobController(jobs services.JobStore) *JobController {
	return &JobController{jobs: jobs}
}

type createJobRequest struct {
	Title        string    `json:"title"`
	Department   string    `json:"department"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	Salary       string    `json:"salary"`
	Location     string    `json:"location"`
	JobType      string    `json:"jobType"`
	Deadline     time.Time `json:"deadline"`
}

// Create handles POST /api/jobs (admin).
func (ct *JobController) Create(c *fiber.Ctx) error {
	var req createJobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	if req.Title == "" || req.Department == "" || req.Description == "" || req.Requirements == "" || req.Deadline.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Please provide all required fields",
		})
	}

	admin := middleware.CurrentUser(c)
	job, err := ct.jobs.Insert(c.Context(), &models.Job{
		Title:        req.Title,
		Department:   req.Department,
		Description:  req.Description,
		Requirements: req.Requirements,
		Salary:       req.Salary,
		Location:     req.Location,
		JobType:      req.JobType,
		Deadline:     req.Deadline,
		CreatedBy:    admin.ID,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    job,
	})
}

// List handles GET /api/jobs (public, active postings only).
func (ct *JobController) List(c *fiber.Ctx) error {
	jobs, err := ct.jobs.ListActive(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(jobs),
		"data":    jobs,
	})
}

// Get handles GET /api/jobs/:id (public).
func (ct *JobController) Get(c *fiber.Ctx) error {
	job, err := ct.jobs.FindByID(c.Context(), c.Params("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    job,
	})
}

type updateJobRequest struct {
	Title        *string    `json:"title"`
	Department   *string    `json:"department"`
	Description  *string    `json:"description"`
	Requirements *string    `json:"requirements"`
	Salary       *string    `json:"salary"`
	Location     *string    `json:"location"`
	JobType      *string    `json:"jobType"`
	Deadline     *time.Time `json:"deadline"`
	IsActive     *bool      `json:"isActive"`
}

// Update handles PUT /api/jobs/:id (admin).
func (ct *JobController) Update(c *fiber.Ctx) error {
	var req updateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	job, err := ct.jobs.Update(c.Context(), c.Params("id"), repository.JobUpdate{
		Title:        req.Title,
		Department:   req.Department,
		Description:  req.Description,
		Requirements: req.Requirements,
		Salary:       req.Salary,
		Location:     req.Location,
		JobType:      req.JobType,
		Deadline:     req.Deadline,
		IsActive:     req.IsActive,
	})
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    job,
	})
}

// Delete handles DELETE /api/jobs/:id (admin). Soft delete only.
func (ct *JobController) Delete(c *fiber.Ctx) error {
	if err := ct.jobs.SoftDelete(c.Context(), c.Params("id")); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Job deleted successfully",
	})
}
