package activities

import (
	"testing"

	"Backend-VolunteerHub/src/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	t.Run("TestForwardTransitions", func(t *testing.T) {
		assert.NoError(t, CanTransition(models.StatusDraft, models.StatusPublished))
		assert.NoError(t, CanTransition(models.StatusPublished, models.StatusOngoing))
		assert.NoError(t, CanTransition(models.StatusOngoing, models.StatusCompleted))
		assert.NoError(t, CanTransition(models.StatusDraft, models.StatusCompleted))
		assert.NoError(t, CanTransition(models.StatusPublished, models.StatusCompleted))
	})

	t.Run("TestSameStatusIsNoOp", func(t *testing.T) {
		assert.NoError(t, CanTransition(models.StatusDraft, models.StatusDraft))
		assert.NoError(t, CanTransition(models.StatusPublished, models.StatusPublished))
		assert.NoError(t, CanTransition(models.StatusOngoing, models.StatusOngoing))
	})

	t.Run("TestBackwardTransitionsRejected", func(t *testing.T) {
		assert.ErrorIs(t, CanTransition(models.StatusPublished, models.StatusDraft), ErrBackwardTransition)
		assert.ErrorIs(t, CanTransition(models.StatusOngoing, models.StatusPublished), ErrBackwardTransition)
		assert.ErrorIs(t, CanTransition(models.StatusOngoing, models.StatusDraft), ErrBackwardTransition)
	})

	t.Run("TestTerminalStatesAreLocked", func(t *testing.T) {
		for _, requested := range []models.ActivityStatus{
			models.StatusDraft,
			models.StatusPublished,
			models.StatusOngoing,
			models.StatusCompleted,
			models.StatusCancelled,
		} {
			assert.ErrorIs(t, CanTransition(models.StatusCompleted, requested), ErrTerminalStateLocked)
			assert.ErrorIs(t, CanTransition(models.StatusCancelled, requested), ErrTerminalStateLocked)
		}
	})

	t.Run("TestCancellation", func(t *testing.T) {
		assert.NoError(t, CanTransition(models.StatusDraft, models.StatusCancelled))
		assert.NoError(t, CanTransition(models.StatusPublished, models.StatusCancelled))
		assert.ErrorIs(t, CanTransition(models.StatusOngoing, models.StatusCancelled), ErrCannotCancelOngoing)
	})

	t.Run("TestUnknownStatus", func(t *testing.T) {
		assert.ErrorIs(t, CanTransition("archived", models.StatusPublished), ErrUnknownStatus)
		assert.ErrorIs(t, CanTransition(models.StatusDraft, "archived"), ErrUnknownStatus)
	})
}
