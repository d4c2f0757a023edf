package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	DB "Backend-VolunteerHub/src/database"
	"Backend-VolunteerHub/src/services/activities"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func statusFor(t *testing.T, err error) int {
	t.Helper()
	app := fiber.New()
	app.Get("/status-mapping", func(c *fiber.Ctx) error {
		return activityError(c, err)
	})
	resp, reqErr := app.Test(httptest.NewRequest(http.MethodGet, "/status-mapping", nil))
	assert.NoError(t, reqErr)
	return resp.StatusCode
}

func TestActivityErrorMapping(t *testing.T) {
	t.Run("TestConflictIs409", func(t *testing.T) {
		// A version miss on save or delete must tell the caller to retry.
		assert.Equal(t, http.StatusConflict, statusFor(t, activities.ErrConflict))
		assert.Equal(t, http.StatusConflict, statusFor(t, DB.ErrConflict))
	})

	t.Run("TestNotFoundIs404", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, statusFor(t, activities.ErrActivityNotFound))
		assert.Equal(t, http.StatusNotFound, statusFor(t, DB.ErrNotFound))
	})

	t.Run("TestLifecycleViolationsAre400", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, statusFor(t, activities.ErrCannotCancelOngoing))
		assert.Equal(t, http.StatusBadRequest, statusFor(t, activities.ErrHasParticipants))
	})
}
