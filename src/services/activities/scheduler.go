package activities

import (
	"log"
	"time"

	DB "Backend-VolunteerHub/src/database"
	"Backend-VolunteerHub/src/jobs"
	"Backend-VolunteerHub/src/models"
	"Backend-VolunteerHub/src/utils"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScheduleCompletion enqueues the auto-completion task at the activity's
// end instant, replacing any previously scheduled one. Without Redis the
// activity simply waits for a manual status change.
func ScheduleCompletion(a *models.Activity) {
	if DB.AsynqClient == nil {
		log.Println("⏩ Skipped completion scheduling (no job queue)")
		return
	}

	end, err := a.EndInstant(utils.Location)
	if err != nil {
		log.Println("❌ Cannot compute end instant for scheduling:", err)
		return
	}
	if !end.After(Clock.Now()) {
		log.Println("⏩ Skipped completion scheduling (end already past)")
		return
	}

	taskID := "complete-activity-" + a.ID.Hex()
	task, err := jobs.NewCompleteActivityTask(a.ID.Hex())
	if err != nil {
		log.Printf("❌ Failed to create task %s: %v", taskID, err)
		return
	}

	jobs.DeleteTask(taskID, DB.RedisURI)
	if _, err := DB.AsynqClient.Enqueue(task, asynq.ProcessAt(end), asynq.TaskID(taskID)); err != nil {
		log.Printf("❌ Failed to enqueue task %s: %v", taskID, err)
		return
	}
	log.Printf("✅ Task scheduled: %s | RunAt=%s", taskID, end.Format(time.RFC3339))
}

// RemoveScheduledCompletion drops the pending completion task, if any.
// Manual intervention takes precedence over the schedule.
func RemoveScheduledCompletion(id primitive.ObjectID) {
	if DB.RedisURI == "" {
		return
	}
	jobs.DeleteTask("complete-activity-"+id.Hex(), DB.RedisURI)
}
