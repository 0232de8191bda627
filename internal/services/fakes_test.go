package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jiruejeta/job-portal/internal/apperr"
	"github.com/jiruejeta/job-portal/internal/models"
	"github.com/jiruejeta/job-portal/internal/repository"
)

// In-memory stores mirroring the repository error contract: NotFound for
// missing records, Conflict for unique-index violations.

type fakeUserStore struct {
	users map[string]*models.User
	// failConflicts makes the next N Insert calls report a username
	// collision, for exercising the bounded retry loops.
	failConflicts int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User)}
}

func (s *fakeUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	if u, ok := s.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, apperr.NotFound("User not found")
}

func (s *fakeUserStore) FindByUsername(_ context.Context, username string) (*models.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("User not found")
}

func (s *fakeUserStore) AdminExists(_ context.Context) (bool, error) {
	for _, u := range s.users {
		if u.Role == models.RoleAdmin {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeUserStore) Insert(_ context.Context, user *models.User) (*models.User, error) {
	if s.failConflicts > 0 {
		s.failConflicts--
		return nil, apperr.Conflict("Username already exists")
	}
	for _, u := range s.users {
		if user.Username != "" && u.Username == user.Username {
			return nil, apperr.Conflict("Username already exists")
		}
	}
	user.ID = bson.NewObjectID()
	user.CreatedAt = time.Now()
	stored := *user
	s.users[user.ID.Hex()] = &stored
	return user, nil
}

func (s *fakeUserStore) List(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		copied := *u
		copied.Password = ""
		out = append(out, copied)
	}
	return out, nil
}

func (s *fakeUserStore) UpdateProfile(_ context.Context, id string, upd repository.ProfileUpdate) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, apperr.NotFound("User not found")
	}
	if upd.FaydaID != "" {
		u.FaydaID = upd.FaydaID
	}
	if upd.Phone != "" {
		u.Phone = upd.Phone
	}
	if upd.Address != "" {
		u.Address = upd.Address
	}
	if upd.Department != "" {
		u.Department = upd.Department
	}
	copied := *u
	return &copied, nil
}

func (s *fakeUserStore) PushDocument(_ context.Context, id string, doc models.Document) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, apperr.NotFound("User not found")
	}
	u.Documents = append(u.Documents, doc)
	copied := *u
	return &copied, nil
}

func (s *fakeUserStore) SetIDPhoto(_ context.Context, id string, photo string) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, apperr.NotFound("User not found")
	}
	u.IDPhoto = photo
	u.IDStatus = models.IDStatusPending
	u.IDRejectionReason = ""
	copied := *u
	return &copied, nil
}

func (s *fakeUserStore) SetIDApproved(_ context.Context, id string, idNumber string, issue, expiry time.Time) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, apperr.NotFound("User not found")
	}
	if s.failConflicts > 0 {
		s.failConflicts--
		return nil, apperr.Conflict("ID number already issued")
	}
	for _, other := range s.users {
		if other.ID != u.ID && other.IDNumber == idNumber {
			return nil, apperr.Conflict("ID number already issued")
		}
	}
	u.IDNumber = idNumber
	u.IDStatus = models.IDStatusActive
	u.IDIssueDate = &issue
	u.IDExpiryDate = &expiry
	copied := *u
	return &copied, nil
}

func (s *fakeUserStore) SetIDRejected(_ context.Context, id string, reason string) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, apperr.NotFound("User not found")
	}
	u.IDStatus = models.IDStatusRejected
	u.IDRejectionReason = reason
	copied := *u
	return &copied, nil
}

type fakeJobStore struct {
	jobs map[string]*models.Job
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{jobs: make(map[string]*models.Job)}
}

func (s *fakeJobStore) add(job models.Job) *models.Job {
	if job.ID.IsZero() {
		job.ID = bson.NewObjectID()
	}
	s.jobs[job.ID.Hex()] = &job
	return &job
}

func (s *fakeJobStore) Insert(_ context.Context, job *models.Job) (*models.Job, error) {
	job.IsActive = true
	return s.add(*job), nil
}

func (s *fakeJobStore) FindByID(_ context.Context, id string) (*models.Job, error) {
	if j, ok := s.jobs[id]; ok {
		copied := *j
		return &copied, nil
	}
	return nil, apperr.NotFound("Job not found")
}

func (s *fakeJobStore) ListActive(_ context.Context) ([]models.Job, error) {
	var out []models.Job
	for _, j := range s.jobs {
		if j.IsActive {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (s *fakeJobStore) Update(_ context.Context, id string, upd repository.JobUpdate) (*models.Job, error) {
	j, ok := s.jobs[id]
	if !ok {
		return nil, apperr.NotFound("Job not found")
	}
	if upd.Title != nil {
		j.Title = *upd.Title
	}
	if upd.IsActive != nil {
		j.IsActive = *upd.IsActive
	}
	copied := *j
	return &copied, nil
}

func (s *fakeJobStore) SoftDelete(_ context.Context, id string) error {
	j, ok := s.jobs[id]
	if !ok {
		return apperr.NotFound("Job not found")
	}
	j.IsActive = false
	return nil
}

type fakeApplicationStore struct {
	apps map[string]*models.Application
}

func newFakeApplicationStore() *fakeApplicationStore {
	return &fakeApplicationStore{apps: make(map[string]*models.Application)}
}

func (s *fakeApplicationStore) Insert(_ context.Context, app *models.Application) (*models.Application, error) {
	for _, a := range s.apps {
		if a.Email == app.Email && a.JobID == app.JobID {
			return nil, apperr.Conflict("You have already applied for this job")
		}
	}
	app.ID = bson.NewObjectID()
	app.Status = models.ApplicationPending
	app.AppliedAt = time.Now()
	stored := *app
	s.apps[app.ID.Hex()] = &stored
	return app, nil
}

func (s *fakeApplicationStore) FindByID(_ context.Context, id string) (*models.Application, error) {
	if a, ok := s.apps[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, apperr.NotFound("Application not found")
}

func (s *fakeApplicationStore) ExistsByEmailAndJob(_ context.Context, email string, jobID bson.ObjectID) (bool, error) {
	for _, a := range s.apps {
		if a.Email == email && a.JobID == jobID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeApplicationStore) List(_ context.Context, status string) ([]models.Application, error) {
	var out []models.Application
	for _, a := range s.apps {
		if status == "" || a.Status == status {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *fakeApplicationStore) MarkApproved(_ context.Context, id string, username, password string) (bool, error) {
	a, ok := s.apps[id]
	if !ok || a.Status != models.ApplicationPending {
		return false, nil
	}
	a.Status = models.ApplicationApproved
	a.GeneratedUsername = username
	a.GeneratedPassword = password
	return true, nil
}

func (s *fakeApplicationStore) MarkRejected(_ context.Context, id string) (bool, error) {
	a, ok := s.apps[id]
	if !ok || a.Status != models.ApplicationPending {
		return false, nil
	}
	a.Status = models.ApplicationRejected
	return true, nil
}

type fakeEmployeeStore struct {
	emps map[string]*models.Employee
	// failConflicts simulates employee_id collisions under concurrency.
	failConflicts int
}

func newFakeEmployeeStore() *fakeEmployeeStore {
	return &fakeEmployeeStore{emps: make(map[string]*models.Employee)}
}

func (s *fakeEmployeeStore) Insert(_ context.Context, emp *models.Employee) (*models.Employee, error) {
	if s.failConflicts > 0 {
		s.failConflicts--
		return nil, apperr.Conflict("Employee record already exists")
	}
	for _, e := range s.emps {
		if e.EmployeeID == emp.EmployeeID || e.UserID == emp.UserID {
			return nil, apperr.Conflict("Employee record already exists")
		}
	}
	emp.ID = bson.NewObjectID()
	emp.CreatedAt = time.Now()
	stored := *emp
	s.emps[emp.ID.Hex()] = &stored
	return emp, nil
}

func (s *fakeEmployeeStore) FindByID(_ context.Context, id string) (*models.Employee, error) {
	if e, ok := s.emps[id]; ok {
		copied := *e
		return &copied, nil
	}
	return nil, apperr.NotFound("Employee not found")
}

func (s *fakeEmployeeStore) FindByUserID(_ context.Context, userID string) (*models.Employee, error) {
	for _, e := range s.emps {
		if e.UserID.Hex() == userID {
			copied := *e
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Employee record not found")
}

func (s *fakeEmployeeStore) List(_ context.Context) ([]models.Employee, error) {
	var out []models.Employee
	for _, e := range s.emps {
		out = append(out, *e)
	}
	return out, nil
}

func (s *fakeEmployeeStore) LastEmployeeID(_ context.Context) (string, error) {
	last := ""
	for _, e := range s.emps {
		if e.EmployeeID > last {
			last = e.EmployeeID
		}
	}
	return last, nil
}

func (s *fakeEmployeeStore) SetPhotoAndQR(_ context.Context, id string, photo, qrCode string, at time.Time) (*models.Employee, error) {
	e, ok := s.emps[id]
	if !ok {
		return nil, apperr.NotFound("Employee record not found")
	}
	e.Photo = photo
	e.PhotoUploadedAt = &at
	e.QRCode = qrCode
	e.QRCodeGeneratedAt = &at
	copied := *e
	return &copied, nil
}
