package bootstrap

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the unique indexes the lifecycle logic relies on.
// Pre-checks in the services are advisory only; these indexes are the final
// authority under concurrent writes.
func EnsureIndexes(db *mongo.Database) error {
	ctx := context.Background()

	// One application per applicant per job.
	if _, err := db.Collection("applications").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "email", Value: 1},
			{Key: "job_id", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("uniq_email_job"),
	}); err != nil {
		return err
	}

	// Usernames are generated lazily, ID numbers only at badge approval,
	// so both indexes are sparse.
	if _, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true).SetName("uniq_username"),
		},
		{
			Keys:    bson.D{{Key: "idNumber", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true).SetName("uniq_id_number"),
		},
	}); err != nil {
		return err
	}

	_, err := db.Collection("employees").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "employee_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_employee_id"),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_employee_user"),
		},
	})
	return err
}
