package controllers

import (
	"net/http"
	"strconv"

	DB "Backend-VolunteerHub/src/database"
	"Backend-VolunteerHub/src/models"
	"Backend-VolunteerHub/src/services/matching"
	"Backend-VolunteerHub/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetMatchedActivities godoc
// @Summary      List published activities ranked for the volunteer
// @Description  Sorted by compatibility score descending, earlier date first on ties
// @Tags         matching
// @Produce      json
// @Param        page query int false "Page"
// @Param        limit query int false "Limit"
// @Success      200  {object}  models.PaginatedResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /volunteers/me/matched-activities [get]
func GetMatchedActivities(c *fiber.Ctx) error {
	volunteerID, err := primitive.ObjectIDFromHex(c.Locals("userId").(string))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid volunteer ID")
	}

	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.Search = c.Query("search", "")

	scored, total, err := matching.ActivitiesForVolunteer(volunteerID, params)
	if err != nil {
		if err == DB.ErrNotFound {
			return utils.HandleError(c, http.StatusNotFound, "Volunteer not found")
		}
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(models.NewPaginatedResponse(scored, total, params))
}
