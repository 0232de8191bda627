package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jiruejeta/job-portal/internal/apperr"
	"github.com/jiruejeta/job-portal/internal/models"
	"github.com/jiruejeta/job-portal/internal/utils"
)

type EmployeeService struct {
	employees EmployeeStore
	jobs      JobStore
}

func NewEmployeeService(employees EmployeeStore, jobs JobStore) *EmployeeService {
	return &EmployeeService{employees: employees, jobs: jobs}
}

// NextEmployeeID derives the next id in the EMP-YY-NNNN sequence from the
// highest previously issued id. The sequence continues from the stored
// prefix even when its year differs from the current one; only an empty
// collection starts a fresh sequence under the current year.
func NextEmployeeID(last string, now time.Time) string {
	year := now.Format("06")
	sequence := 1
	if last != "" {
		parts := strings.Split(last, "-")
		if len(parts) == 3 {
			if n, err := strconv.Atoi(parts[2]); err == nil {
				sequence = n + 1
				year = parts[1]
			}
		}
	}
	return fmt.Sprintf("EMP-%s-%04d", year, sequence)
}

// Profile returns the employee record for a logged-in applicant, with the
// job posting joined in.
func (s *EmployeeService) Profile(ctx context.Context, userID string) (*models.Employee, error) {
	emp, err := s.employees.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.joinJob(ctx, emp)
	return emp, nil
}

// joinJob attaches the posting the employee was hired under. A removed
// posting leaves the field nil instead of failing the read.
func (s *EmployeeService) joinJob(ctx context.Context, emp *models.Employee) {
	if job, err := s.jobs.FindByID(ctx, emp.JobID.Hex()); err == nil {
		emp.Job = job
	}
}

// UploadPhoto stores a fresh badge photo and regenerates the QR payload.
// Both fields are persisted in a single update so the QR can never go
// stale behind the photo.
func (s *EmployeeService) UploadPhoto(ctx context.Context, userID string, photo string) (*models.Employee, error) {
	if photo == "" {
		return nil, apperr.Validation("Photo is required")
	}

	emp, err := s.employees.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	qr, err := utils.GenerateBadgeQR(emp.EmployeeID, emp.FullName, emp.JobTitle, emp.Department, true, now)
	if err != nil {
		return nil, err
	}

	return s.employees.SetPhotoAndQR(ctx, emp.ID.Hex(), photo, qr, now)
}

func (s *EmployeeService) List(ctx context.Context) ([]models.Employee, error) {
	return s.employees.List(ctx)
}

func (s *EmployeeService) Get(ctx context.Context, id string) (*models.Employee, error) {
	emp, err := s.employees.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.joinJob(ctx, emp)
	return emp, nil
}
