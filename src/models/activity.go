package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityStatus is the forward-only lifecycle, see services/activities.CanTransition.
type ActivityStatus string

const (
	StatusDraft     ActivityStatus = "draft"
	StatusPublished ActivityStatus = "published"
	StatusOngoing   ActivityStatus = "ongoing"
	StatusCompleted ActivityStatus = "completed"
	StatusCancelled ActivityStatus = "cancelled"
)

// IsTerminal reports whether no further transition may leave this status.
func (s ActivityStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Attendance status of one participant within an activity.
const (
	AttendanceRegistered = "registered"
	AttendanceAttended   = "attended"
	AttendanceAbsent     = "absent"
)

// Activity is one scheduled volunteer event. Participants are embedded:
// the activity document is the consistency boundary and is written as a
// whole under a version check.
type Activity struct {
	ID                  primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title               string             `json:"title" bson:"title" example:"Coastal Cleanup Drive"`
	Description         string             `json:"description" bson:"description"`
	Date                string             `json:"date" bson:"date" example:"2025-03-11"`
	TimeFrom            string             `json:"timeFrom" bson:"timeFrom" example:"09:00"`
	TimeTo              string             `json:"timeTo" bson:"timeTo" example:"12:00"`
	RequiredSkills      []string           `json:"requiredSkills" bson:"requiredSkills" example:"first aid,cooking"`
	RequiredServices    []string           `json:"requiredServices" bson:"requiredServices" example:"relief operations"`
	Status              ActivityStatus     `json:"status" bson:"status" example:"published"`
	MaxParticipants     int                `json:"maxParticipants" bson:"maxParticipants" example:"20"`
	CurrentParticipants int                `json:"currentParticipants" bson:"currentParticipants"`
	Participants        []Participant      `json:"participants" bson:"participants"`
	CreatedBy           primitive.ObjectID `json:"createdBy" bson:"createdBy"`
	IsUrgent            bool               `json:"isUrgent" bson:"isUrgent"`
	Tags                []string           `json:"tags" bson:"tags"`
	Notes               string             `json:"notes" bson:"notes"`
	Version             int64              `json:"-" bson:"version"`
	CreatedAt           time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt           time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Participant is one volunteer's registration record inside an Activity.
type Participant struct {
	VolunteerID      primitive.ObjectID `json:"volunteerId" bson:"volunteerId"`
	JoinedAt         time.Time          `json:"joinedAt" bson:"joinedAt"`
	AttendanceStatus string             `json:"attendanceStatus" bson:"attendanceStatus" example:"registered"`
	TimeIn           *time.Time         `json:"timeIn" bson:"timeIn"`
	TimeOut          *time.Time         `json:"timeOut" bson:"timeOut"`
	TotalHours       float64            `json:"totalHours" bson:"totalHours"`
}

// FindParticipant returns the index of the volunteer's record, or -1.
func (a *Activity) FindParticipant(volunteerID primitive.ObjectID) int {
	for i := range a.Participants {
		if a.Participants[i].VolunteerID == volunteerID {
			return i
		}
	}
	return -1
}

// StartInstant is the event start in the given location.
func (a *Activity) StartInstant(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04", a.Date+" "+a.TimeFrom, loc)
}

// EndInstant is the event end in the given location. When the end
// time-of-day has a smaller hour than the start, the event runs
// overnight and the end lands on the following civil day.
func (a *Activity) EndInstant(loc *time.Location) (time.Time, error) {
	end, err := time.ParseInLocation("2006-01-02 15:04", a.Date+" "+a.TimeTo, loc)
	if err != nil {
		return time.Time{}, err
	}
	start, err := a.StartInstant(loc)
	if err != nil {
		return time.Time{}, err
	}
	if end.Hour() < start.Hour() {
		end = end.AddDate(0, 0, 1)
	}
	return end, nil
}
