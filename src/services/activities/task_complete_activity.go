package activities

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"Backend-VolunteerHub/src/jobs"
	"Backend-VolunteerHub/src/models"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleCompleteActivityTask fires at the scheduled event end: it moves
// the activity to completed, which finalizes attendance. Registered as
// the handler for jobs.TypeCompleteActivity.
func HandleCompleteActivityTask(ctx context.Context, t *asynq.Task) error {
	var payload jobs.ActivityPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	id, err := primitive.ObjectIDFromHex(payload.ActivityID)
	if err != nil {
		return err
	}

	_, err = ChangeStatus(id, models.StatusCompleted)
	switch {
	case err == nil:
		log.Println("✅ Activity auto-completed:", payload.ActivityID)
		return nil
	case errors.Is(err, ErrActivityNotFound):
		log.Println("⚠️ Activity not found. Possibly deleted. Skipping task:", payload.ActivityID)
		return nil
	case errors.Is(err, ErrTerminalStateLocked):
		// Already completed or cancelled by hand; nothing to do.
		return nil
	case errors.Is(err, ErrConflict):
		return err // asynq retries, the operation replays from fresh state
	default:
		log.Println("❌ Failed to auto-complete activity:", err)
		return err
	}
}
