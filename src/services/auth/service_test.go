package auth

import (
	"testing"
	"time"

	"Backend-VolunteerHub/src/models"
	"Backend-VolunteerHub/src/utils"

	"github.com/stretchr/testify/assert"
)

func TestNewVolunteer(t *testing.T) {
	fixed := time.Date(2026, 5, 1, 9, 0, 0, 0, utils.Location)
	Clock = utils.FixedClock{T: fixed}

	user := newVolunteer("jo@example.org", "Jo", []byte("hashed"), Clock.Now())

	assert.Equal(t, "jo@example.org", user.Email)
	assert.Equal(t, models.RoleVolunteer, user.Role)
	assert.True(t, user.IsActive)
	assert.Empty(t, user.Skills)
	assert.Empty(t, user.Services)
	assert.Equal(t, fixed, user.CreatedAt)
	assert.False(t, user.ID.IsZero())
}
