package controllers

import (
	"errors"
	"net/http"

	DB "Backend-VolunteerHub/src/database"
	"Backend-VolunteerHub/src/models"
	"Backend-VolunteerHub/src/services/participants"
	"Backend-VolunteerHub/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JoinActivity godoc
// @Summary      Join an activity
// @Description  Registers the authenticated volunteer; refused when full, duplicate, or outside the join window
// @Tags         participants
// @Produce      json
// @Param        id path string true "Activity ID"
// @Success      201  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /activities/{id}/join [post]
func JoinActivity(c *fiber.Ctx) error {
	activityID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid activity ID format")
	}
	volunteerID, err := primitive.ObjectIDFromHex(c.Locals("userId").(string))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid volunteer ID")
	}

	if err := participants.JoinActivity(activityID, volunteerID); err != nil {
		return participantError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(models.SuccessResponse{Message: "Joined activity"})
}

// LeaveActivity godoc
// @Summary      Leave an activity
// @Tags         participants
// @Produce      json
// @Param        id path string true "Activity ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /activities/{id}/leave [post]
func LeaveActivity(c *fiber.Ctx) error {
	activityID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid activity ID format")
	}
	volunteerID, err := primitive.ObjectIDFromHex(c.Locals("userId").(string))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid volunteer ID")
	}

	if err := participants.LeaveActivity(activityID, volunteerID); err != nil {
		return participantError(c, err)
	}
	return c.JSON(models.SuccessResponse{Message: "Left activity"})
}

func participantError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, participants.ErrCapacityExceeded),
		errors.Is(err, participants.ErrAlreadyRegistered),
		errors.Is(err, DB.ErrConflict):
		return utils.HandleError(c, http.StatusConflict, err.Error())
	case errors.Is(err, participants.ErrNotRegistered), errors.Is(err, DB.ErrNotFound):
		return utils.HandleError(c, http.StatusNotFound, err.Error())
	default:
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}
}
