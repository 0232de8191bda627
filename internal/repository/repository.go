// Package repository holds the Mongo-backed stores. Driver errors are
// translated here: mongo.ErrNoDocuments becomes apperr.NotFound and
// duplicate-key writes become apperr.Conflict, so the services above never
// see driver types.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jiruejeta/job-portal/internal/apperr"
)

const opTimeout = 5 * time.Second

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, opTimeout)
}

// objectID parses a hex id from the route path.
func objectID(hex string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(hex)
	if err != nil {
		return bson.ObjectID{}, apperr.Validation("Invalid id")
	}
	return id, nil
}
