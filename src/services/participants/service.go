package participants

import (
	"context"
	"time"

	DB "Backend-VolunteerHub/src/database"
	"Backend-VolunteerHub/src/services/notifications"
	"Backend-VolunteerHub/src/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Clock is swapped for a fixed clock in tests.
var Clock utils.Clock = utils.RealClock{}

// JoinActivity registers the volunteer as one read-modify-write unit
// against the activity document. A version miss surfaces as
// database.ErrConflict for the caller to retry.
func JoinActivity(activityID, volunteerID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a, err := DB.LoadActivity(ctx, activityID)
	if err != nil {
		return err
	}

	event, err := Join(a, volunteerID, Clock.Now())
	if err != nil {
		return err
	}

	if err := DB.SaveActivity(ctx, a); err != nil {
		return err
	}
	DB.InvalidatePattern("activities:list:*")
	DB.DelCache("activity:" + activityID.Hex())

	notifications.Dispatch(event)
	return nil
}

// LeaveActivity removes the volunteer's registration.
func LeaveActivity(activityID, volunteerID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a, err := DB.LoadActivity(ctx, activityID)
	if err != nil {
		return err
	}

	event, err := Leave(a, volunteerID)
	if err != nil {
		return err
	}

	if err := DB.SaveActivity(ctx, a); err != nil {
		return err
	}
	DB.InvalidatePattern("activities:list:*")
	DB.DelCache("activity:" + activityID.Hex())

	notifications.Dispatch(event)
	return nil
}
