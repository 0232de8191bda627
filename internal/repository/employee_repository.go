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

type EmployeeRepository struct {
	col *mongo.Collection
}

func NewEmployeeRepository(db *mongo.Database) *EmployeeRepository {
	return &EmployeeRepository{col: db.Collection("employees")}
}

func (r *EmployeeRepository) Insert(ctx context.Context, emp *models.Employee) (*models.Employee, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	now := time.Now()
	emp.CreatedAt = now
	emp.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, emp)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.Conflict("Employee record already exists")
		}
		return nil, err
	}
	emp.ID = res.InsertedID.(bson.ObjectID)
	return emp, nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id string) (*models.Employee, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var emp models.Employee
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&emp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Employee not found")
		}
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeRepository) FindByUserID(ctx context.Context, userID string) (*models.Employee, error) {
	oid, err := objectID(userID)
	if err != nil {
		return nil, err
	}
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var emp models.Employee
	if err := r.col.FindOne(ctx, bson.M{"user_id": oid}).Decode(&emp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Employee record not found")
		}
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeRepository) List(ctx context.Context) ([]models.Employee, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var emps []models.Employee
	if err := cursor.All(ctx, &emps); err != nil {
		return nil, err
	}
	return emps, nil
}

// LastEmployeeID returns the highest issued employee id, or "" when none
// have been issued yet.
func (r *EmployeeRepository) LastEmployeeID(ctx context.Context) (string, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	opts := options.FindOne().
		SetSort(bson.D{{Key: "employee_id", Value: -1}}).
		SetProjection(bson.M{"employee_id": 1})
	var emp models.Employee
	if err := r.col.FindOne(ctx, bson.M{}, opts).Decode(&emp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil
		}
		return "", err
	}
	return emp.EmployeeID, nil
}

// SetPhotoAndQR persists a fresh photo and its regenerated QR in one
// update, so a crash can never leave the badge QR stale behind the photo.
func (r *EmployeeRepository) SetPhotoAndQR(ctx context.Context, id string, photo, qrCode string, at time.Time) (*models.Employee, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"photo":             photo,
		"photoUploadedAt":   at,
		"qrCode":            qrCode,
		"qrCodeGeneratedAt": at,
		"updatedAt":         at,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var emp models.Employee
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&emp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("Employee record not found")
		}
		return nil, err
	}
	return &emp, nil
}
