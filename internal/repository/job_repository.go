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

type JobRepository struct {
	col *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{col: db.Collection("jobs")}
}

func (r *JobRepository) Insert(ctx context.Context, job *models.Job) (*models.Job, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	now := time.Now()
	job.IsActive = true
	job.CreatedAt = now
	job.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, job)
	if err != nil {
		return nil, err
	}
	job.ID = res.InsertedID.(bson.ObjectID)
	return job, nil
}

func (r *JobRepository) FindByID(ctx context.Context, id string) (*models.Job, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var job models.Job
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&job); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Job not found")
		}
		return nil, err
	}
	return &job, nil
}

// ListActive returns open postings, newest first. Soft-deleted jobs never
// appear in the public listing.
func (r *JobRepository) ListActive(ctx context.Context) ([]models.Job, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var jobs []models.Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// JobUpdate carries the admin-editable posting fields. Nil pointers leave
// the stored value untouched.
type JobUpdate struct {
	Title        *string
	Department   *string
	Description  *string
	Requirements *string
	Salary       *string
	Location     *string
	JobType      *string
	Deadline     *time.Time
	IsActive     *bool
}

func (r *JobRepository) Update(ctx context.Context, id string, upd JobUpdate) (*models.Job, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	set := bson.M{"updatedAt": time.Now()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Department != nil {
		set["department"] = *upd.Department
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Requirements != nil {
		set["requirements"] = *upd.Requirements
	}
	if upd.Salary != nil {
		set["salary"] = *upd.Salary
	}
	if upd.Location != nil {
		set["location"] = *upd.Location
	}
	if upd.JobType != nil {
		set["jobType"] = *upd.JobType
	}
	if upd.Deadline != nil {
		set["deadline"] = *upd.Deadline
	}
	if upd.IsActive != nil {
		set["isActive"] = *upd.IsActive
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var job models.Job
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&job)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Job not found")
		}
		return nil, err
	}
	return &job, nil
}

// SoftDelete flips isActive off. Jobs are never hard-deleted.
func (r *JobRepository) SoftDelete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"isActive":  false,
		"updatedAt": time.Now(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("Job not found")
	}
	return nil
}
