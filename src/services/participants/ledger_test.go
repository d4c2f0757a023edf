package participants

import (
	"testing"
	"time"

	"Backend-VolunteerHub/src/models"
	"Backend-VolunteerHub/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func publishedActivity(maxParticipants int) *models.Activity {
	return &models.Activity{
		ID:              primitive.NewObjectID(),
		Title:           "Beach Cleanup",
		Date:            "2026-05-01",
		TimeFrom:        "09:00",
		TimeTo:          "12:00",
		Status:          models.StatusPublished,
		MaxParticipants: maxParticipants,
		Participants:    []models.Participant{},
	}
}

// at builds an instant on the activity date at the given wall time.
func at(hour, minute int) time.Time {
	return time.Date(2026, 5, 1, hour, minute, 0, 0, utils.Location)
}

func TestJoin(t *testing.T) {
	dayBefore := time.Date(2026, 4, 30, 10, 0, 0, 0, utils.Location)

	t.Run("TestJoinRegistersParticipant", func(t *testing.T) {
		a := publishedActivity(10)
		volunteerID := primitive.NewObjectID()

		event, err := Join(a, volunteerID, dayBefore)
		require.NoError(t, err)

		assert.Equal(t, models.EventParticipantJoined, event.Type)
		assert.Equal(t, a.ID, event.ActivityID)
		assert.Equal(t, volunteerID, event.VolunteerID)
		require.Len(t, a.Participants, 1)
		assert.Equal(t, 1, a.CurrentParticipants)
		assert.Equal(t, models.AttendanceRegistered, a.Participants[0].AttendanceStatus)
		assert.Equal(t, dayBefore, a.Participants[0].JoinedAt)
	})

	t.Run("TestDoubleJoinRejected", func(t *testing.T) {
		a := publishedActivity(10)
		volunteerID := primitive.NewObjectID()

		_, err := Join(a, volunteerID, dayBefore)
		require.NoError(t, err)

		_, err = Join(a, volunteerID, dayBefore)
		assert.ErrorIs(t, err, ErrAlreadyRegistered)
		assert.Len(t, a.Participants, 1)
	})

	t.Run("TestCapacityFreedByLeave", func(t *testing.T) {
		a := publishedActivity(1)
		volunteerA := primitive.NewObjectID()
		volunteerB := primitive.NewObjectID()

		_, err := Join(a, volunteerA, dayBefore)
		require.NoError(t, err)

		_, err = Join(a, volunteerB, dayBefore)
		assert.ErrorIs(t, err, ErrCapacityExceeded)

		_, err = Leave(a, volunteerA)
		require.NoError(t, err)
		assert.Equal(t, 0, a.CurrentParticipants)

		_, err = Join(a, volunteerB, dayBefore)
		assert.NoError(t, err)
		assert.Equal(t, 1, a.CurrentParticipants)
	})

	t.Run("TestJoinWindow", func(t *testing.T) {
		cases := []struct {
			name string
			now  time.Time
			err  error
		}{
			{"open well before start", at(7, 0), nil},
			{"open exactly one hour and a second before start", at(7, 59).Add(59 * time.Second), nil},
			{"closed exactly one hour before start", at(8, 0), ErrJoinWindowClosed},
			{"closed just before start", at(8, 59), ErrJoinWindowClosed},
			{"open again once the event started", at(9, 0), nil},
			{"open mid-event", at(10, 30), nil},
			{"closed at the end instant", at(12, 0), ErrJoinWindowClosed},
			{"closed after the event", at(13, 0), ErrJoinWindowClosed},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				a := publishedActivity(10)
				_, err := Join(a, primitive.NewObjectID(), tc.now)
				if tc.err == nil {
					assert.NoError(t, err)
				} else {
					assert.ErrorIs(t, err, tc.err)
				}
			})
		}
	})

	t.Run("TestJoinRequiresPublished", func(t *testing.T) {
		for _, status := range []models.ActivityStatus{
			models.StatusDraft,
			models.StatusOngoing,
			models.StatusCompleted,
			models.StatusCancelled,
		} {
			a := publishedActivity(10)
			a.Status = status
			_, err := Join(a, primitive.NewObjectID(), dayBefore)
			assert.ErrorIs(t, err, ErrNotPublished, "status %s", status)
		}
	})
}

func TestLeave(t *testing.T) {
	dayBefore := time.Date(2026, 4, 30, 10, 0, 0, 0, utils.Location)

	t.Run("TestLeaveRemovesRegistration", func(t *testing.T) {
		a := publishedActivity(10)
		volunteerID := primitive.NewObjectID()

		_, err := Join(a, volunteerID, dayBefore)
		require.NoError(t, err)

		event, err := Leave(a, volunteerID)
		require.NoError(t, err)

		assert.Equal(t, models.EventParticipantLeft, event.Type)
		assert.Empty(t, a.Participants)
		assert.Equal(t, 0, a.CurrentParticipants)
	})

	t.Run("TestLeaveWithoutRegistration", func(t *testing.T) {
		a := publishedActivity(10)
		_, err := Leave(a, primitive.NewObjectID())
		assert.ErrorIs(t, err, ErrNotRegistered)
	})

	t.Run("TestLeaveRequiresPublished", func(t *testing.T) {
		a := publishedActivity(10)
		volunteerID := primitive.NewObjectID()
		_, err := Join(a, volunteerID, dayBefore)
		require.NoError(t, err)

		a.Status = models.StatusCompleted
		_, err = Leave(a, volunteerID)
		assert.ErrorIs(t, err, ErrNotPublished)
		assert.Len(t, a.Participants, 1)
	})
}
