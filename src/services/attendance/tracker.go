package attendance

import (
	"errors"
	"math"
	"time"

	"Backend-VolunteerHub/src/models"
	"Backend-VolunteerHub/src/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attendance-sequencing violations, surfaced verbatim to the operator.
var (
	ErrNotRegistered       = errors.New("volunteer is not registered for this activity")
	ErrAlreadyTimedIn      = errors.New("time-in already recorded")
	ErrAlreadyTimedOut     = errors.New("time-out already recorded")
	ErrTimeInRequired      = errors.New("time-in must be recorded before time-out")
	ErrTimeOutBeforeTimeIn = errors.New("time-out cannot be earlier than time-in")
)

// HoursBetween converts a time-in/time-out span to served hours,
// rounded half-up to 2 decimal places.
func HoursBetween(timeIn, timeOut time.Time) float64 {
	h := float64(timeOut.Sub(timeIn).Milliseconds()) / 3_600_000
	return math.Floor(h*100+0.5) / 100
}

// RecordTimeIn stamps the participant's time-in and marks them attended.
// at overrides the clock when the operator backfills a time.
func RecordTimeIn(a *models.Activity, volunteerID primitive.ObjectID, at *time.Time, now time.Time) (models.DomainEvent, error) {
	idx := a.FindParticipant(volunteerID)
	if idx < 0 {
		return models.DomainEvent{}, ErrNotRegistered
	}
	p := &a.Participants[idx]
	if p.TimeIn != nil {
		return models.DomainEvent{}, ErrAlreadyTimedIn
	}

	t := now
	if at != nil {
		t = *at
	}
	p.TimeIn = &t
	p.AttendanceStatus = models.AttendanceAttended

	return models.DomainEvent{
		Type:          models.EventAttendanceRecorded,
		ActivityID:    a.ID,
		ActivityTitle: a.Title,
		VolunteerID:   volunteerID,
	}, nil
}

// RecordTimeOut stamps the participant's time-out and computes served hours.
func RecordTimeOut(a *models.Activity, volunteerID primitive.ObjectID, at *time.Time, now time.Time) (models.DomainEvent, error) {
	idx := a.FindParticipant(volunteerID)
	if idx < 0 {
		return models.DomainEvent{}, ErrNotRegistered
	}
	p := &a.Participants[idx]
	if p.TimeIn == nil {
		return models.DomainEvent{}, ErrTimeInRequired
	}
	if p.TimeOut != nil {
		return models.DomainEvent{}, ErrAlreadyTimedOut
	}

	t := now
	if at != nil {
		t = *at
	}
	if t.Before(*p.TimeIn) {
		return models.DomainEvent{}, ErrTimeOutBeforeTimeIn
	}
	p.TimeOut = &t
	p.TotalHours = HoursBetween(*p.TimeIn, t)

	return models.DomainEvent{
		Type:          models.EventAttendanceRecorded,
		ActivityID:    a.ID,
		ActivityTitle: a.Title,
		VolunteerID:   volunteerID,
	}, nil
}

// Finalize reconciles every participant when the activity completes:
// no stamps at all means absent; an open time-in is closed at the event
// end instant. Participants already resolved are untouched, so running
// it again changes nothing.
func Finalize(a *models.Activity) error {
	end, err := a.EndInstant(utils.Location)
	if err != nil {
		return err
	}

	for i := range a.Participants {
		p := &a.Participants[i]
		switch {
		case p.TimeIn == nil && p.TimeOut == nil:
			p.AttendanceStatus = models.AttendanceAbsent
		case p.TimeIn != nil && p.TimeOut == nil:
			out := end
			p.TimeOut = &out
			p.TotalHours = HoursBetween(*p.TimeIn, out)
			p.AttendanceStatus = models.AttendanceAttended
		}
	}
	return nil
}
