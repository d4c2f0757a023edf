package attendance

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

// RecordTimeInForActivity stamps time-in for one participant and
// persists the aggregate under its version check.
func RecordTimeInForActivity(activityID, volunteerID primitive.ObjectID, customTime *time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a, err := DB.LoadActivity(ctx, activityID)
	if err != nil {
		return err
	}

	event, err := RecordTimeIn(a, volunteerID, customTime, Clock.Now())
	if err != nil {
		return err
	}

	if err := DB.SaveActivity(ctx, a); err != nil {
		return err
	}
	DB.DelCache("activity:" + activityID.Hex())

	notifications.Dispatch(event)
	return nil
}

// RecordTimeOutForActivity stamps time-out and the computed hours.
func RecordTimeOutForActivity(activityID, volunteerID primitive.ObjectID, customTime *time.Time) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a, err := DB.LoadActivity(ctx, activityID)
	if err != nil {
		return err
	}

	event, err := RecordTimeOut(a, volunteerID, customTime, Clock.Now())
	if err != nil {
		return err
	}

	if err := DB.SaveActivity(ctx, a); err != nil {
		return err
	}
	DB.DelCache("activity:" + activityID.Hex())

	notifications.Dispatch(event)
	return nil
}
