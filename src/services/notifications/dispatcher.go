package notifications

import (
	"context"
	"log"

	DB "Backend-VolunteerHub/src/database"
	"Backend-VolunteerHub/src/jobs"
	"Backend-VolunteerHub/src/models"
	"Backend-VolunteerHub/src/services/notifications/email"

	"github.com/hibiken/asynq"
)

// Dispatch forwards a domain event to the notification collaborator.
// Fire-and-forget: with Redis the matching task is enqueued, without it
// the handler runs synchronously, and in either case a failure is
// logged and never propagated back to the state change that emitted it.
func Dispatch(event models.DomainEvent) {
	switch event.Type {
	case models.EventActivityPublished:
		deliver("notify-published-"+event.ActivityID.Hex(),
			func() (*asynq.Task, error) { return jobs.NewNotifyPublishedTask(event.ActivityID.Hex()) },
			email.HandleNotifyPublished)

	case models.EventActivityCancelled:
		// Cancellation fan-out only matters once someone has registered.
		if event.Participants == 0 {
			return
		}
		deliver("notify-cancelled-"+event.ActivityID.Hex(),
			func() (*asynq.Task, error) { return jobs.NewNotifyCancelledTask(event.ActivityID.Hex()) },
			email.HandleNotifyCancelled)

	case models.EventParticipantJoined, models.EventParticipantLeft:
		left := event.Type == models.EventParticipantLeft
		kind := "join"
		if left {
			kind = "leave"
		}
		deliver("notify-"+kind+"-"+event.ActivityID.Hex()+"-"+event.VolunteerID.Hex(),
			func() (*asynq.Task, error) {
				return jobs.NewNotifyRegistrationTask(event.ActivityID.Hex(), event.VolunteerID.Hex(), left)
			},
			email.HandleNotifyRegistration)

	default:
		// Attendance and field-edit events are recorded for the audit
		// trail only; no outbound message today.
		log.Printf("📣 event %s activity=%s", event.Type, event.ActivityID.Hex())
	}
}

func deliver(taskID string, create func() (*asynq.Task, error), handler func(context.Context, *asynq.Task) error) {
	task, err := create()
	if err != nil {
		log.Println("❌ build notification task:", err)
		return
	}

	if DB.AsynqClient != nil {
		if _, err := DB.AsynqClient.Enqueue(task, asynq.TaskID(taskID), asynq.MaxRetry(3)); err != nil {
			log.Println("❌ enqueue notification task:", err)
		} else {
			log.Println("✅ Enqueued notification task:", taskID)
		}
		return
	}

	// No Redis: send in the request goroutine, still best-effort.
	go func() {
		if err := handler(context.Background(), task); err != nil {
			log.Printf("❌ send notification %s: %v", taskID, err)
		}
	}()
}
