package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jiruejeta/job-portal/internal/models"
	"github.com/jiruejeta/job-portal/internal/repository"
)

// Store interfaces the lifecycle services depend on. The Mongo
// repositories satisfy them; tests substitute in-memory fakes.

type UserStore interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	AdminExists(ctx context.Context) (bool, error)
	Insert(ctx context.Context, user *models.User) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	UpdateProfile(ctx context.Context, id string, upd repository.ProfileUpdate) (*models.User, error)
	PushDocument(ctx context.Context, id string, doc models.Document) (*models.User, error)
	SetIDPhoto(ctx context.Context, id string, photo string) (*models.User, error)
	SetIDApproved(ctx context.Context, id string, idNumber string, issue, expiry time.Time) (*models.User, error)
	SetIDRejected(ctx context.Context, id string, reason string) (*models.User, error)
}

type JobStore interface {
	Insert(ctx context.Context, job *models.Job) (*models.Job, error)
	FindByID(ctx context.Context, id string) (*models.Job, error)
	ListActive(ctx context.Context) ([]models.Job, error)
	Update(ctx context.Context, id string, upd repository.JobUpdate) (*models.Job, error)
	SoftDelete(ctx context.Context, id string) error
}

type ApplicationStore interface {
	Insert(ctx context.Context, app *models.Application) (*models.Application, error)
	FindByID(ctx context.Context, id string) (*models.Application, error)
	ExistsByEmailAndJob(ctx context.Context, email string, jobID bson.ObjectID) (bool, error)
	List(ctx context.Context, status string) ([]models.Application, error)
	MarkApproved(ctx context.Context, id string, username, password string) (bool, error)
	MarkRejected(ctx context.Context, id string) (bool, error)
}

type EmployeeStore interface {
	Insert(ctx context.Context, emp *models.Employee) (*models.Employee, error)
	FindByID(ctx context.Context, id string) (*models.Employee, error)
	FindByUserID(ctx context.Context, userID string) (*models.Employee, error)
	List(ctx context.Context) ([]models.Employee, error)
	LastEmployeeID(ctx context.Context) (string, error)
	SetPhotoAndQR(ctx context.Context, id string, photo, qrCode string, at time.Time) (*models.Employee, error)
}
