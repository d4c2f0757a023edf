package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	DB "Backend-VolunteerHub/src/database"
	"Backend-VolunteerHub/src/models"
	"Backend-VolunteerHub/src/services/activities"
	"Backend-VolunteerHub/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = validator.New()

// ChangeStatusRequest carries the requested lifecycle status.
type ChangeStatusRequest struct {
	Status models.ActivityStatus `json:"status" validate:"required,oneof=draft published ongoing completed cancelled"`
}

// CreateActivityRequest is validated before touching the aggregate.
type CreateActivityRequest struct {
	Title            string                `json:"title" validate:"required"`
	Description      string                `json:"description"`
	Date             string                `json:"date" validate:"required,datetime=2006-01-02"`
	TimeFrom         string                `json:"timeFrom" validate:"required,datetime=15:04"`
	TimeTo           string                `json:"timeTo" validate:"required,datetime=15:04"`
	RequiredSkills   []string              `json:"requiredSkills" validate:"required,min=1"`
	RequiredServices []string              `json:"requiredServices" validate:"required,min=1"`
	Status           models.ActivityStatus `json:"status" validate:"omitempty,oneof=draft published"`
	MaxParticipants  int                   `json:"maxParticipants" validate:"required,min=1"`
	IsUrgent         bool                  `json:"isUrgent"`
	Tags             []string              `json:"tags"`
	Notes            string                `json:"notes"`
}

// CreateActivity godoc
// @Summary      Create an activity
// @Description  Admin/staff create a scheduled volunteer activity, as draft or directly published
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        activity body CreateActivityRequest true "Activity data"
// @Success      201  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /activities [post]
func CreateActivity(c *fiber.Ctx) error {
	var req CreateActivityRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	status := req.Status
	if status == "" {
		status = models.StatusDraft
	}

	creatorID, _ := primitive.ObjectIDFromHex(c.Locals("userId").(string))
	activity := &models.Activity{
		Title:            req.Title,
		Description:      req.Description,
		Date:             req.Date,
		TimeFrom:         req.TimeFrom,
		TimeTo:           req.TimeTo,
		RequiredSkills:   req.RequiredSkills,
		RequiredServices: req.RequiredServices,
		Status:           status,
		MaxParticipants:  req.MaxParticipants,
		CreatedBy:        creatorID,
		IsUrgent:         req.IsUrgent,
		Tags:             req.Tags,
		Notes:            req.Notes,
	}

	created, err := activities.CreateActivity(activity)
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}
	return c.Status(http.StatusCreated).JSON(models.SuccessResponse{Message: "Activity created", Data: created})
}

// GetAllActivities godoc
// @Summary      List activities
// @Tags         activities
// @Produce      json
// @Param        page query int false "Page"
// @Param        limit query int false "Limit"
// @Param        search query string false "Search"
// @Param        statuses query string false "Comma-separated statuses"
// @Param        skills query string false "Comma-separated required skills"
// @Success      200  {object}  models.PaginatedResponse
// @Router       /activities [get]
func GetAllActivities(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.Search = c.Query("search", "")
	params.SortBy = c.Query("sortBy", "date")
	params.Order = c.Query("order", "asc")

	statuses := splitQuery(c.Query("statuses"))
	skills := splitQuery(c.Query("skills"))

	result, total, _, err := activities.GetAllActivities(params, statuses, skills)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(models.NewPaginatedResponse(result, total, params))
}

// GetActivityByID godoc
// @Summary      Get one activity
// @Tags         activities
// @Produce      json
// @Param        id path string true "Activity ID"
// @Success      200  {object}  models.Activity
// @Failure      404  {object}  models.ErrorResponse
// @Router       /activities/{id} [get]
func GetActivityByID(c *fiber.Ctx) error {
	activity, err := activities.GetActivityByID(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, http.StatusNotFound, err.Error())
	}
	return c.JSON(activity)
}

// UpdateActivity godoc
// @Summary      Edit activity fields
// @Description  Status, participants and the participant count cannot be edited here
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        id path string true "Activity ID"
// @Param        fields body activities.UpdateFields true "Fields to update"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /activities/{id} [put]
func UpdateActivity(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid activity ID format")
	}

	var fields activities.UpdateFields
	if err := c.BodyParser(&fields); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(fields); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	updated, err := activities.UpdateActivity(id, fields)
	if err != nil {
		return activityError(c, err)
	}
	return c.JSON(models.SuccessResponse{Message: "Activity updated", Data: updated})
}

// ChangeActivityStatus godoc
// @Summary      Change activity status
// @Description  Transitions follow the forward-only lifecycle; completing finalizes attendance
// @Tags         activities
// @Accept       json
// @Produce      json
// @Param        id path string true "Activity ID"
// @Param        body body controllers.ChangeStatusRequest true "Requested status"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /activities/{id}/status [patch]
func ChangeActivityStatus(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid activity ID format")
	}

	var req ChangeStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	updated, err := activities.ChangeStatus(id, req.Status)
	if err != nil {
		return activityError(c, err)
	}
	return c.JSON(models.SuccessResponse{Message: "Status updated", Data: updated})
}

// DeleteActivity godoc
// @Summary      Delete an activity
// @Description  Refused while the activity has participants
// @Tags         activities
// @Param        id path string true "Activity ID"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /activities/{id} [delete]
func DeleteActivity(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid activity ID format")
	}
	if err := activities.DeleteActivity(id); err != nil {
		return activityError(c, err)
	}
	return c.JSON(models.SuccessResponse{Message: "Activity deleted"})
}

func activityError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, activities.ErrActivityNotFound), errors.Is(err, DB.ErrNotFound):
		return utils.HandleError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, activities.ErrConflict), errors.Is(err, DB.ErrConflict):
		return utils.HandleError(c, http.StatusConflict, err.Error())
	default:
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}
}

func splitQuery(raw string) []string {
	parts := strings.Split(raw, ",")
	if len(parts) == 1 && parts[0] == "" {
		return nil
	}
	return parts
}
