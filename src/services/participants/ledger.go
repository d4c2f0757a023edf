package participants

import (
	"errors"
	"time"

	"Backend-VolunteerHub/src/models"
	"Backend-VolunteerHub/src/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Participant-eligibility violations. User-correctable, never retried.
var (
	ErrCapacityExceeded  = errors.New("activity is already full")
	ErrAlreadyRegistered = errors.New("volunteer is already registered for this activity")
	ErrNotRegistered     = errors.New("volunteer is not registered for this activity")
	ErrJoinWindowClosed  = errors.New("registration for this activity is closed")
	ErrNotPublished      = errors.New("activity is not open for registration")
)

// lateRegistrationCutoff is the window immediately before the start
// instant during which joining is refused.
const lateRegistrationCutoff = time.Hour

// Join appends a registered participant after checking the join window
// and capacity. The aggregate is mutated in place; the returned event is
// forwarded to the notification dispatcher after a successful persist.
func Join(a *models.Activity, volunteerID primitive.ObjectID, now time.Time) (models.DomainEvent, error) {
	if a.Status != models.StatusPublished {
		return models.DomainEvent{}, ErrNotPublished
	}

	start, err := a.StartInstant(utils.Location)
	if err != nil {
		return models.DomainEvent{}, err
	}
	end, err := a.EndInstant(utils.Location)
	if err != nil {
		return models.DomainEvent{}, err
	}
	// No joining once the event has ended, nor inside the hour before it
	// starts. Joining mid-event stays possible for walk-in volunteers.
	if !now.Before(end) {
		return models.DomainEvent{}, ErrJoinWindowClosed
	}
	if !now.Before(start.Add(-lateRegistrationCutoff)) && now.Before(start) {
		return models.DomainEvent{}, ErrJoinWindowClosed
	}

	if a.FindParticipant(volunteerID) >= 0 {
		return models.DomainEvent{}, ErrAlreadyRegistered
	}
	if a.CurrentParticipants >= a.MaxParticipants {
		return models.DomainEvent{}, ErrCapacityExceeded
	}

	a.Participants = append(a.Participants, models.Participant{
		VolunteerID:      volunteerID,
		JoinedAt:         now,
		AttendanceStatus: models.AttendanceRegistered,
	})
	a.CurrentParticipants = len(a.Participants)

	return models.DomainEvent{
		Type:          models.EventParticipantJoined,
		ActivityID:    a.ID,
		ActivityTitle: a.Title,
		VolunteerID:   volunteerID,
	}, nil
}

// Leave removes the volunteer's registration record. Only possible while
// the activity is still joinable; once attendance exists the record is
// kept for hour tracking.
func Leave(a *models.Activity, volunteerID primitive.ObjectID) (models.DomainEvent, error) {
	if a.Status != models.StatusPublished {
		return models.DomainEvent{}, ErrNotPublished
	}
	idx := a.FindParticipant(volunteerID)
	if idx < 0 {
		return models.DomainEvent{}, ErrNotRegistered
	}

	a.Participants = append(a.Participants[:idx], a.Participants[idx+1:]...)
	a.CurrentParticipants = len(a.Participants)

	return models.DomainEvent{
		Type:          models.EventParticipantLeft,
		ActivityID:    a.ID,
		ActivityTitle: a.Title,
		VolunteerID:   volunteerID,
	}, nil
}
