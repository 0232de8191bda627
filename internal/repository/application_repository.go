package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/jiruejeta/job-portal/internal/apperr"
	"github.com/jiruejeta/job-portal/internal/models"
)

type ApplicationRepository struct {
	col *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{col: db.Collection("applications")}
}

// Insert creates a pending application. The (email, job_id) unique index
// rejects concurrent duplicates that slipped past the advisory pre-check.
func (r *ApplicationRepository) Insert(ctx context.Context, app *models.Application) (*models.Application, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	app.Status = models.ApplicationPending
	app.AppliedAt = time.Now()

	res, err := r.col.InsertOne(ctx, app)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.Conflict("You have already applied for this job")
		}
		return nil, err
	}
	app.ID = res.InsertedID.(bson.ObjectID)
	return app, nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*models.Application, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var app models.Application
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&app); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Application not found")
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepository) ExistsByEmailAndJob(ctx context.Context, email string, jobID bson.ObjectID) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	count, err := r.col.CountDocuments(ctx, bson.M{"email": email, "job_id": jobID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// List returns applications newest-first, optionally filtered by status.
func (r *ApplicationRepository) List(ctx context.Context, status string) ([]models.Application, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "appliedAt", Value: -1}})
	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var apps []models.Application
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

// MarkApproved transitions a pending application to approved and persists
// the generated credential snapshot on it. The status filter makes the
// transition race-safe: a concurrent approve/reject wins and this call
// reports false.
func (r *ApplicationRepository) MarkApproved(ctx context.Context, id string, username, password string) (bool, error) {
	oid, err := objectID(id)
	if err != nil {
		return false, err
	}
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid, "status": models.ApplicationPending},
		bson.M{"$set": bson.M{
			"status":            models.ApplicationApproved,
			"generatedUsername": username,
			"generatedPassword": password,
		}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

// MarkRejected transitions a pending application to rejected; same
// race-safety contract as MarkApproved.
func (r *ApplicationRepository) MarkRejected(ctx context.Context, id string) (bool, error) {
	oid, err := objectID(id)
	if err != nil {
		return false, err
	}
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid, "status": models.ApplicationPending},
		bson.M{"$set": bson.M{"status": models.ApplicationRejected}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}
