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

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var user models.User
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var user models.User
	if err := r.col.FindOne(ctx, bson.M{"username": username}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) AdminExists(ctx context.Context) (bool, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	count, err := r.col.CountDocuments(ctx, bson.M{"role": models.RoleAdmin})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Insert writes a new user. The sparse unique index on username is the
// final authority against generated-name collisions.
func (r *UserRepository) Insert(ctx context.Context, user *models.User) (*models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	user.CreatedAt = time.Now()
	res, err := r.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.Conflict("Username already exists")
		}
		return nil, err
	}
	user.ID = res.InsertedID.(bson.ObjectID)
	return user, nil
}

// List returns every user with the password field stripped at the query
// level, so the hash never leaves the database.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	opts := options.Find().
		SetProjection(bson.M{"password": 0}).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ProfileUpdate carries the applicant-editable profile fields.
type ProfileUpdate struct {
	FaydaID    string
	Phone      string
	Address    string
	Department string
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*models.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	set := bson.M{}
	if upd.FaydaID != "" {
		set["faydaId"] = upd.FaydaID
	}
	if upd.Phone != "" {
		set["phone"] = upd.Phone
	}
	if upd.Address != "" {
		set["address"] = upd.Address
	}
	if upd.Department != "" {
		set["department"] = upd.Department
	}

	// The server rejects an empty $set; a body with nothing to change is
	// a no-op that just returns the current profile.
	if len(set) == 0 {
		user, err := r.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		user.Password = ""
		return user, nil
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"password": 0})
	var user models.User
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) PushDocument(ctx context.Context, id string, doc models.Document) (*models.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"password": 0})
	var user models.User
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$push": bson.M{"documents": doc}}, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, err
	}
	return &user, nil
}

// SetIDPhoto stores a fresh badge photo. A new photo always puts the badge
// back into review: idStatus resets to pending and any prior rejection
// reason is cleared, in the same update.
func (r *UserRepository) SetIDPhoto(ctx context.Context, id string, photo string) (*models.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	update := bson.M{
		"$set":   bson.M{"idPhoto": photo, "idStatus": models.IDStatusPending},
		"$unset": bson.M{"idRejectionReason": ""},
	}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"password": 0})
	var user models.User
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, err
	}
	return &user, nil
}

// SetIDApproved writes the issued id number under the sparse unique index;
// a colliding number comes back as Conflict so the caller can retry.
func (r *UserRepository) SetIDApproved(ctx context.Context, id string, idNumber string, issue, expiry time.Time) (*models.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"idNumber":     idNumber,
		"idStatus":     models.IDStatusActive,
		"idIssueDate":  issue,
		"idExpiryDate": expiry,
	}}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"password": 0})
	var user models.User
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("User not found")
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperr.Conflict("ID number already issued")
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) SetIDRejected(ctx context.Context, id string, reason string) (*models.User, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"idStatus":          models.IDStatusRejected,
		"idRejectionReason": reason,
	}}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"password": 0})
	var user models.User
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, err
	}
	return &user, nil
}
