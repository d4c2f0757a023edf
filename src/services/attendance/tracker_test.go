package attendance

import (
	"testing"
	"time"

	"Backend-VolunteerHub/src/models"
	"Backend-VolunteerHub/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func activityWithParticipant(timeFrom, timeTo string, volunteerID primitive.ObjectID) *models.Activity {
	return &models.Activity{
		ID:       primitive.NewObjectID(),
		Title:    "Food Bank Shift",
		Date:     "2026-05-01",
		TimeFrom: timeFrom,
		TimeTo:   timeTo,
		Status:   models.StatusPublished,
		Participants: []models.Participant{
			{VolunteerID: volunteerID, AttendanceStatus: models.AttendanceRegistered},
		},
		CurrentParticipants: 1,
		MaxParticipants:     10,
	}
}

func stamp(day, hour, minute int) time.Time {
	return time.Date(2026, 5, day, hour, minute, 0, 0, utils.Location)
}

func TestHoursBetween(t *testing.T) {
	t.Run("TestTwoAndAHalfHours", func(t *testing.T) {
		assert.Equal(t, 2.5, HoursBetween(stamp(1, 9, 0), stamp(1, 11, 30)))
	})

	t.Run("TestRoundsHalfUp", func(t *testing.T) {
		// 1h 30m 18s = 1.505 hours, the half cent rounds up
		out := stamp(1, 10, 30).Add(18 * time.Second)
		assert.Equal(t, 1.51, HoursBetween(stamp(1, 9, 0), out))
	})

	t.Run("TestZeroSpan", func(t *testing.T) {
		assert.Equal(t, 0.0, HoursBetween(stamp(1, 9, 0), stamp(1, 9, 0)))
	})
}

func TestRecordTimeIn(t *testing.T) {
	volunteerID := primitive.NewObjectID()

	t.Run("TestStampsAndMarksAttended", func(t *testing.T) {
		a := activityWithParticipant("09:00", "12:00", volunteerID)
		now := stamp(1, 9, 5)

		event, err := RecordTimeIn(a, volunteerID, nil, now)
		require.NoError(t, err)

		p := a.Participants[0]
		require.NotNil(t, p.TimeIn)
		assert.Equal(t, now, *p.TimeIn)
		assert.Equal(t, models.AttendanceAttended, p.AttendanceStatus)
		assert.Equal(t, models.EventAttendanceRecorded, event.Type)
	})

	t.Run("TestCustomTimeOverridesClock", func(t *testing.T) {
		a := activityWithParticipant("09:00", "12:00", volunteerID)
		backfilled := stamp(1, 9, 0)

		_, err := RecordTimeIn(a, volunteerID, &backfilled, stamp(1, 11, 0))
		require.NoError(t, err)
		assert.Equal(t, backfilled, *a.Participants[0].TimeIn)
	})

	t.Run("TestSecondTimeInRejected", func(t *testing.T) {
		a := activityWithParticipant("09:00", "12:00", volunteerID)
		_, err := RecordTimeIn(a, volunteerID, nil, stamp(1, 9, 0))
		require.NoError(t, err)

		_, err = RecordTimeIn(a, volunteerID, nil, stamp(1, 9, 10))
		assert.ErrorIs(t, err, ErrAlreadyTimedIn)
	})

	t.Run("TestUnregisteredVolunteer", func(t *testing.T) {
		a := activityWithParticipant("09:00", "12:00", volunteerID)
		_, err := RecordTimeIn(a, primitive.NewObjectID(), nil, stamp(1, 9, 0))
		assert.ErrorIs(t, err, ErrNotRegistered)
	})
}

func TestRecordTimeOut(t *testing.T) {
	volunteerID := primitive.NewObjectID()

	t.Run("TestComputesServedHours", func(t *testing.T) {
		a := activityWithParticipant("09:00", "12:00", volunteerID)
		_, err := RecordTimeIn(a, volunteerID, nil, stamp(1, 9, 0))
		require.NoError(t, err)

		_, err = RecordTimeOut(a, volunteerID, nil, stamp(1, 11, 30))
		require.NoError(t, err)

		p := a.Participants[0]
		require.NotNil(t, p.TimeOut)
		assert.Equal(t, 2.5, p.TotalHours)
	})

	t.Run("TestTimeOutBeforeTimeIn", func(t *testing.T) {
		a := activityWithParticipant("09:00", "12:00", volunteerID)
		_, err := RecordTimeOut(a, volunteerID, nil, stamp(1, 11, 0))
		assert.ErrorIs(t, err, ErrTimeInRequired)
	})

	t.Run("TestTimeOutEarlierThanTimeIn", func(t *testing.T) {
		a := activityWithParticipant("09:00", "12:00", volunteerID)
		in := stamp(1, 10, 0)
		_, err := RecordTimeIn(a, volunteerID, &in, in)
		require.NoError(t, err)

		out := stamp(1, 9, 0)
		_, err = RecordTimeOut(a, volunteerID, &out, stamp(1, 11, 0))
		assert.ErrorIs(t, err, ErrTimeOutBeforeTimeIn)

		p := a.Participants[0]
		assert.Nil(t, p.TimeOut)
		assert.Equal(t, 0.0, p.TotalHours)
	})

	t.Run("TestTimeOutEqualToTimeIn", func(t *testing.T) {
		a := activityWithParticipant("09:00", "12:00", volunteerID)
		in := stamp(1, 10, 0)
		_, err := RecordTimeIn(a, volunteerID, &in, in)
		require.NoError(t, err)

		_, err = RecordTimeOut(a, volunteerID, &in, stamp(1, 11, 0))
		require.NoError(t, err)
		assert.Equal(t, 0.0, a.Participants[0].TotalHours)
	})

	t.Run("TestSecondTimeOutRejected", func(t *testing.T) {
		a := activityWithParticipant("09:00", "12:00", volunteerID)
		_, err := RecordTimeIn(a, volunteerID, nil, stamp(1, 9, 0))
		require.NoError(t, err)
		_, err = RecordTimeOut(a, volunteerID, nil, stamp(1, 11, 0))
		require.NoError(t, err)

		_, err = RecordTimeOut(a, volunteerID, nil, stamp(1, 11, 30))
		assert.ErrorIs(t, err, ErrAlreadyTimedOut)
	})
}

func TestFinalize(t *testing.T) {
	volunteerID := primitive.NewObjectID()

	t.Run("TestNoStampsMeansAbsent", func(t *testing.T) {
		a := activityWithParticipant("09:00", "12:00", volunteerID)

		require.NoError(t, Finalize(a))

		p := a.Participants[0]
		assert.Equal(t, models.AttendanceAbsent, p.AttendanceStatus)
		assert.Nil(t, p.TimeIn)
		assert.Equal(t, 0.0, p.TotalHours)
	})

	t.Run("TestOpenTimeInClosedAtEnd", func(t *testing.T) {
		a := activityWithParticipant("09:00", "12:00", volunteerID)
		_, err := RecordTimeIn(a, volunteerID, nil, stamp(1, 9, 0))
		require.NoError(t, err)

		require.NoError(t, Finalize(a))

		p := a.Participants[0]
		require.NotNil(t, p.TimeOut)
		assert.Equal(t, stamp(1, 12, 0), *p.TimeOut)
		assert.Equal(t, 3.0, p.TotalHours)
		assert.Equal(t, models.AttendanceAttended, p.AttendanceStatus)
	})

	t.Run("TestOvernightActivityEndsNextDay", func(t *testing.T) {
		a := activityWithParticipant("22:00", "04:00", volunteerID)
		_, err := RecordTimeIn(a, volunteerID, nil, stamp(1, 22, 0))
		require.NoError(t, err)

		require.NoError(t, Finalize(a))

		p := a.Participants[0]
		require.NotNil(t, p.TimeOut)
		assert.Equal(t, stamp(2, 4, 0), *p.TimeOut)
		assert.Equal(t, 6.0, p.TotalHours)
	})

	t.Run("TestFinalizeIsIdempotent", func(t *testing.T) {
		a := activityWithParticipant("09:00", "12:00", volunteerID)
		in := stamp(1, 9, 0)
		out := stamp(1, 10, 15)
		_, err := RecordTimeIn(a, volunteerID, &in, in)
		require.NoError(t, err)
		_, err = RecordTimeOut(a, volunteerID, &out, out)
		require.NoError(t, err)

		require.NoError(t, Finalize(a))
		require.NoError(t, Finalize(a))

		p := a.Participants[0]
		assert.Equal(t, out, *p.TimeOut)
		assert.Equal(t, 1.25, p.TotalHours)
		assert.Equal(t, models.AttendanceAttended, p.AttendanceStatus)
	})
}
