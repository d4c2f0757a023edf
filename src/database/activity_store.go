package database

import (
	"context"
	"errors"

	"Backend-VolunteerHub/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Storage-layer conditions. ErrConflict is the one error callers should
// retry: every aggregate operation recomputes safely from fresh state.
var (
	ErrNotFound = errors.New("document not found")
	ErrConflict = errors.New("document was modified concurrently")
)

// LoadActivity reads one activity aggregate.
func LoadActivity(ctx context.Context, id primitive.ObjectID) (*models.Activity, error) {
	var a models.Activity
	err := ActivityCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// SaveActivity writes the aggregate back under a version check, so two
// concurrent read-modify-write cycles against the same activity cannot
// both succeed. The stored version is bumped on every write.
func SaveActivity(ctx context.Context, a *models.Activity) error {
	expected := a.Version
	a.Version = expected + 1

	res, err := ActivityCollection.ReplaceOne(ctx, bson.M{"_id": a.ID, "version": expected}, a)
	if err != nil {
		a.Version = expected
		return err
	}
	if res.MatchedCount == 0 {
		a.Version = expected
		return ErrConflict
	}
	return nil
}
