package activities

import (
	"testing"

	"Backend-VolunteerHub/src/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func strPtr(s string) *string { return &s }

func TestUpdateFieldsApplyTo(t *testing.T) {
	base := func() *models.Activity {
		return &models.Activity{
			Title:    "Garden Workday",
			Date:     "2026-05-01",
			TimeFrom: "09:00",
			TimeTo:   "12:00",
			Status:   models.StatusPublished,
			Participants: []models.Participant{
				{VolunteerID: primitive.NewObjectID()},
			},
			CurrentParticipants: 1,
			MaxParticipants:     10,
		}
	}

	t.Run("TestNilFieldsLeaveActivityUnchanged", func(t *testing.T) {
		a := base()
		changed := UpdateFields{}.applyTo(a)

		assert.False(t, changed)
		assert.Equal(t, "Garden Workday", a.Title)
		assert.Equal(t, "2026-05-01", a.Date)
		assert.Equal(t, 10, a.MaxParticipants)
	})

	t.Run("TestScheduleFieldsFlagRescheduling", func(t *testing.T) {
		a := base()
		changed := UpdateFields{Date: strPtr("2026-05-02")}.applyTo(a)
		assert.True(t, changed)
		assert.Equal(t, "2026-05-02", a.Date)

		a = base()
		changed = UpdateFields{TimeTo: strPtr("13:00")}.applyTo(a)
		assert.True(t, changed)

		// Same value as stored: nothing to reschedule
		a = base()
		changed = UpdateFields{TimeFrom: strPtr("09:00")}.applyTo(a)
		assert.False(t, changed)
	})

	t.Run("TestDescriptiveEditsDoNotFlagRescheduling", func(t *testing.T) {
		a := base()
		urgent := true
		changed := UpdateFields{
			Title:           strPtr("Garden Workday (extended)"),
			MaxParticipants: func() *int { n := 25; return &n }(),
			IsUrgent:        &urgent,
		}.applyTo(a)

		assert.False(t, changed)
		assert.Equal(t, "Garden Workday (extended)", a.Title)
		assert.Equal(t, 25, a.MaxParticipants)
		assert.True(t, a.IsUrgent)
	})

	t.Run("TestStatusAndParticipantsUntouchable", func(t *testing.T) {
		a := base()
		registered := a.Participants[0].VolunteerID

		UpdateFields{Title: strPtr("Renamed")}.applyTo(a)

		assert.Equal(t, models.StatusPublished, a.Status)
		assert.Len(t, a.Participants, 1)
		assert.Equal(t, registered, a.Participants[0].VolunteerID)
		assert.Equal(t, 1, a.CurrentParticipants)
	})
}
