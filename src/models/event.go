package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Event types emitted by aggregate operations and handed to the
// notification dispatcher. Delivery is best-effort: a dropped event
// never rolls back the state change that produced it.
const (
	EventParticipantJoined  = "ParticipantJoined"
	EventParticipantLeft    = "ParticipantLeft"
	EventActivityPublished  = "ActivityPublished"
	EventActivityCancelled  = "ActivityCancelled"
	EventActivityUpdated    = "ActivityUpdated"
	EventAttendanceRecorded = "AttendanceRecorded"
)

// DomainEvent carries the minimum the notification layer needs.
type DomainEvent struct {
	Type          string             `json:"type"`
	ActivityID    primitive.ObjectID `json:"activityId"`
	ActivityTitle string             `json:"activityTitle"`
	VolunteerID   primitive.ObjectID `json:"volunteerId,omitempty"`
	Participants  int                `json:"participants,omitempty"`
}

// MatchResult holds derived compatibility scores for a volunteer and
// activity pair. Never persisted.
type MatchResult struct {
	SkillMatchScore   int `json:"skillMatchScore"`
	ServiceMatchScore int `json:"serviceMatchScore"`
	TotalScore        int `json:"totalScore"`
}
