package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jiruejeta/job-portal/internal/apperr"
	"github.com/jiruejeta/job-portal/internal/models"
	"github.com/jiruejeta/job-portal/internal/utils"
)

// maxAllocAttempts bounds the generate-then-insert loops for usernames and
// employee ids. Collisions past the bound surface as Conflict instead of
// being silently accepted.
const maxAllocAttempts = 5

type ApplicationService struct {
	apps      ApplicationStore
	jobs      JobStore
	users     UserStore
	employees EmployeeStore
}

func NewApplicationService(apps ApplicationStore, jobs JobStore, users UserStore, employees EmployeeStore) *ApplicationService {
	return &ApplicationService{apps: apps, jobs: jobs, users: users, employees: employees}
}

type ApplyInput struct {
	ApplicantName string  `json:"applicantName"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	GPA           float64 `json:"gpa"`
	ExitExam      string  `json:"exitExam"`
	JobID         string  `json:"jobId"`
}

// ApplicationSummary is the public projection returned to applicants.
// Generated credentials never appear here.
type ApplicationSummary struct {
	ID            string    `json:"id"`
	ApplicantName string    `json:"applicantName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	JobID         string    `json:"jobId"`
	Status        string    `json:"status"`
	AppliedAt     time.Time `json:"appliedAt"`
}

// Apply submits a public job application. The pre-checks on the job and on
// prior applications are advisory; the unique (email, job_id) index is the
// final authority under concurrent submissions.
func (s *ApplicationService) Apply(ctx context.Context, in ApplyInput) (*ApplicationSummary, error) {
	if in.ApplicantName == "" || in.Email == "" || in.Phone == "" || in.GPA == 0 || in.ExitExam == "" || in.JobID == "" {
		return nil, apperr.Validation("Please provide: name, email, phone, GPA, exit exam, and job ID")
	}
	if in.GPA < 0 || in.GPA > 4 {
		return nil, apperr.Validation("GPA must be between 0 and 4")
	}

	job, err := s.jobs.FindByID(ctx, in.JobID)
	if err != nil {
		return nil, err
	}
	if !job.IsActive {
		return nil, apperr.Validation("This job is no longer accepting applications")
	}
	if !time.Now().Before(job.Deadline) {
		return nil, apperr.Validation("Application deadline has passed")
	}

	exists, err := s.apps.ExistsByEmailAndJob(ctx, in.Email, job.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("You have already applied for this job")
	}

	app, err := s.apps.Insert(ctx, &models.Application{
		ApplicantName: in.ApplicantName,
		Email:         in.Email,
		Phone:         in.Phone,
		GPA:           in.GPA,
		ExitExam:      in.ExitExam,
		JobID:         job.ID,
	})
	if err != nil {
		return nil, err
	}

	return &ApplicationSummary{
		ID:            app.ID.Hex(),
		ApplicantName: app.ApplicantName,
		Email:         app.Email,
		Phone:         app.Phone,
		JobID:         app.JobID.Hex(),
		Status:        app.Status,
		AppliedAt:     app.AppliedAt,
	}, nil
}

// ApprovalResult carries the one-time credential disclosure. No other
// operation ever returns the plaintext password again.
type ApprovalResult struct {
	ApplicationID string `json:"applicationId"`
	Status        string `json:"status"`
	UserID        string `json:"userId"`
	Name          string `json:"name"`
	Username      string `json:"username"`
	Password      string `json:"password"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	EmployeeID    string `json:"employeeId"`
}

// Approve transitions a pending application to approved: provisions the
// user account with generated credentials, creates the employee record,
// and persists the credential snapshot on the application.
func (s *ApplicationService) Approve(ctx context.Context, id string) (*ApprovalResult, error) {
	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.Status != models.ApplicationPending {
		return nil, apperr.Conflict(fmt.Sprintf("Application already %s", app.Status))
	}

	// Department comes from the job posting; "General" when the posting
	// has been removed since the application was filed.
	department := "General"
	var job *models.Job
	if j, err := s.jobs.FindByID(ctx, app.JobID.Hex()); err == nil {
		job = j
		department = j.Department
	} else if !apperr.IsKind(err, apperr.KindNotFound) {
		return nil, err
	}

	plainPassword := utils.GeneratePassword(app.ApplicantName)
	hashed, err := utils.HashPassword(plainPassword)
	if err != nil {
		return nil, err
	}

	user, username, err := s.createApplicantUser(ctx, app, hashed, department)
	if err != nil {
		return nil, err
	}

	emp, err := s.createEmployee(ctx, user, app, job, department)
	if err != nil {
		return nil, err
	}

	ok, err := s.apps.MarkApproved(ctx, id, username, plainPassword)
	if err != nil {
		return nil, err
	}
	if !ok {
		// Lost a race with a concurrent approve/reject.
		current, err := s.apps.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return nil, apperr.Conflict(fmt.Sprintf("Application already %s", current.Status))
	}

	return &ApprovalResult{
		ApplicationID: app.ID.Hex(),
		Status:        models.ApplicationApproved,
		UserID:        user.ID.Hex(),
		Name:          user.Name,
		Username:      username,
		Password:      plainPassword,
		Email:         user.Email,
		Role:          user.Role,
		EmployeeID:    emp.EmployeeID,
	}, nil
}

// createApplicantUser inserts the provisioned account, regenerating the
// username on unique-index collisions up to maxAllocAttempts.
func (s *ApplicationService) createApplicantUser(ctx context.Context, app *models.Application, hashedPassword, department string) (*models.User, string, error) {
	for attempt := 0; attempt < maxAllocAttempts; attempt++ {
		username := utils.GenerateUsername(app.ApplicantName)
		if attempt > 0 {
			username = fmt.Sprintf("%s%d", username, 10+rand.Intn(90))
		}

		user, err := s.users.Insert(ctx, &models.User{
			Name:       app.ApplicantName,
			Username:   username,
			Password:   hashedPassword,
			Email:      app.Email,
			Phone:      app.Phone,
			Role:       models.RoleApplicant,
			Department: department,
			IsApproved: true,
		})
		if err != nil {
			if apperr.IsKind(err, apperr.KindConflict) {
				continue
			}
			return nil, "", err
		}
		return user, username, nil
	}
	return nil, "", apperr.Conflict("Could not allocate a unique username")
}

// createEmployee issues the next employee id and inserts the snapshot
// record. The unique employee_id index catches concurrent issuance; a
// collision re-reads the sequence and retries.
func (s *ApplicationService) createEmployee(ctx context.Context, user *models.User, app *models.Application, job *models.Job, department string) (*models.Employee, error) {
	emp := &models.Employee{
		UserID:        user.ID,
		ApplicationID: app.ID,
		JobID:         app.JobID,
		FullName:      app.ApplicantName,
		Email:         app.Email,
		Phone:         app.Phone,
		Department:    department,
		StartDate:     time.Now(),
		Status:        models.EmployeeActive,
	}
	if job != nil {
		emp.JobTitle = job.Title
		emp.Salary = job.Salary
		emp.Location = job.Location
		emp.JobType = job.JobType
	}

	for attempt := 0; attempt < maxAllocAttempts; attempt++ {
		last, err := s.employees.LastEmployeeID(ctx)
		if err != nil {
			return nil, err
		}
		emp.EmployeeID = NextEmployeeID(last, time.Now())

		created, err := s.employees.Insert(ctx, emp)
		if err != nil {
			if apperr.IsKind(err, apperr.KindConflict) {
				continue
			}
			return nil, err
		}
		return created, nil
	}
	return nil, apperr.Conflict("Could not allocate a unique employee id")
}

// Reject transitions a pending application to rejected. No side effects on
// users or employees.
func (s *ApplicationService) Reject(ctx context.Context, id string) (*ApplicationSummary, error) {
	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.Status != models.ApplicationPending {
		return nil, apperr.Conflict(fmt.Sprintf("Application already %s", app.Status))
	}

	ok, err := s.apps.MarkRejected(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		current, err := s.apps.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return nil, apperr.Conflict(fmt.Sprintf("Application already %s", current.Status))
	}

	return &ApplicationSummary{
		ID:            app.ID.Hex(),
		ApplicantName: app.ApplicantName,
		Status:        models.ApplicationRejected,
	}, nil
}

// List returns applications (optionally filtered by status) with the job
// title and department joined in for the admin views.
func (s *ApplicationService) List(ctx context.Context, status string) ([]models.Application, error) {
	apps, err := s.apps.List(ctx, status)
	if err != nil {
		return nil, err
	}
	s.joinJobs(ctx, apps, false)
	return apps, nil
}

// Get returns one application with the full job joined in.
func (s *ApplicationService) Get(ctx context.Context, id string) (*models.Application, error) {
	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	apps := []models.Application{*app}
	s.joinJobs(ctx, apps, true)
	return &apps[0], nil
}

// joinJobs attaches job details to each application. Missing jobs are left
// nil rather than failing the listing. Summary mode keeps only the title
// and department the list views need.
func (s *ApplicationService) joinJobs(ctx context.Context, apps []models.Application, full bool) {
	cache := make(map[string]*models.Job)
	for i := range apps {
		hexID := apps[i].JobID.Hex()
		job, seen := cache[hexID]
		if !seen {
			j, err := s.jobs.FindByID(ctx, hexID)
			if err == nil {
				if full {
					job = j
				} else {
					job = &models.Job{ID: j.ID, Title: j.Title, Department: j.Department}
				}
			}
			cache[hexID] = job
		}
		apps[i].Job = job
	}
}
