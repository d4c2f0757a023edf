package controllers

import (
	"errors"
	"net/http"
	"time"

	DB "Backend-VolunteerHub/src/database"
	"Backend-VolunteerHub/src/models"
	"Backend-VolunteerHub/src/services/attendance"
	"Backend-VolunteerHub/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AttendanceRequest addresses one participant, with an optional
// backfilled timestamp.
type AttendanceRequest struct {
	VolunteerID string     `json:"volunteerId" validate:"required"`
	CustomTime  *time.Time `json:"customTime"`
}

// RecordTimeIn godoc
// @Summary      Record time-in
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        id path string true "Activity ID"
// @Param        body body controllers.AttendanceRequest true "Participant and optional custom time"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /activities/{id}/time-in [post]
func RecordTimeIn(c *fiber.Ctx) error {
	return recordAttendance(c, attendance.RecordTimeInForActivity, "Time-in recorded")
}

// RecordTimeOut godoc
// @Summary      Record time-out
// @Tags         attendance
// @Accept       json
// @Produce      json
// @Param        id path string true "Activity ID"
// @Param        body body controllers.AttendanceRequest true "Participant and optional custom time"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /activities/{id}/time-out [post]
func RecordTimeOut(c *fiber.Ctx) error {
	return recordAttendance(c, attendance.RecordTimeOutForActivity, "Time-out recorded")
}

func recordAttendance(c *fiber.Ctx, record func(primitive.ObjectID, primitive.ObjectID, *time.Time) error, message string) error {
	activityID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid activity ID format")
	}

	var req AttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}
	volunteerID, err := primitive.ObjectIDFromHex(req.VolunteerID)
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid volunteer ID format")
	}

	if err := record(activityID, volunteerID, req.CustomTime); err != nil {
		return attendanceError(c, err)
	}
	return c.JSON(models.SuccessResponse{Message: message})
}

// CreateCheckinToken godoc
// @Summary      Issue a check-in/out QR token
// @Description  Staff screens render the returned token; it expires after 30 seconds
// @Tags         attendance
// @Produce      json
// @Param        id path string true "Activity ID"
// @Param        type query string true "checkin or checkout"
// @Success      201  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /activities/{id}/qr-token [post]
func CreateCheckinToken(c *fiber.Ctx) error {
	activityID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid activity ID format")
	}

	token, expiresAt, err := attendance.CreateCheckinToken(activityID, c.Query("type", "checkin"))
	if err != nil {
		return attendanceError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(models.SuccessResponse{
		Message: "Token created",
		Data:    fiber.Map{"token": token, "expiresAt": expiresAt},
	})
}

// ClaimCheckinToken godoc
// @Summary      Claim a scanned QR token
// @Description  Records time-in or time-out for the authenticated volunteer
// @Tags         attendance
// @Produce      json
// @Param        token path string true "Token"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /checkin/{token} [post]
func ClaimCheckinToken(c *fiber.Ctx) error {
	volunteerID, err := primitive.ObjectIDFromHex(c.Locals("userId").(string))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid volunteer ID")
	}

	if err := attendance.ClaimCheckinToken(c.Params("token"), volunteerID); err != nil {
		return attendanceError(c, err)
	}
	return c.JSON(models.SuccessResponse{Message: "Attendance recorded"})
}

func attendanceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, attendance.ErrAlreadyTimedIn),
		errors.Is(err, attendance.ErrAlreadyTimedOut),
		errors.Is(err, DB.ErrConflict):
		return utils.HandleError(c, http.StatusConflict, err.Error())
	case errors.Is(err, attendance.ErrNotRegistered), errors.Is(err, DB.ErrNotFound):
		return utils.HandleError(c, http.StatusNotFound, err.Error())
	default:
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}
}
