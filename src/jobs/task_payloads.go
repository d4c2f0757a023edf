package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// Task types. Completion is scheduled at the event end instant;
// notification tasks are enqueued for immediate best-effort delivery.
const (
	TypeCompleteActivity   = "activity:complete"
	TypeNotifyPublished    = "notify:published"
	TypeNotifyCancelled    = "notify:cancelled"
	TypeNotifyRegistration = "notify:registration"
)

type ActivityPayload struct {
	ActivityID string `json:"activity_id"`
}

type RegistrationPayload struct {
	ActivityID  string `json:"activity_id"`
	VolunteerID string `json:"volunteer_id"`
	Left        bool   `json:"left"`
}

func NewCompleteActivityTask(activityID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ActivityPayload{ActivityID: activityID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeCompleteActivity, payload), nil
}

func NewNotifyPublishedTask(activityID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ActivityPayload{ActivityID: activityID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeNotifyPublished, payload), nil
}

func NewNotifyCancelledTask(activityID string) (*asynq.Task, error) {
	payload, err := json.Marshal(ActivityPayload{ActivityID: activityID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeNotifyCancelled, payload), nil
}

func NewNotifyRegistrationTask(activityID, volunteerID string, left bool) (*asynq.Task, error) {
	payload, err := json.Marshal(RegistrationPayload{ActivityID: activityID, VolunteerID: volunteerID, Left: left})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeNotifyRegistration, payload), nil
}
