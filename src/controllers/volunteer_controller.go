package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"Backend-VolunteerHub/src/models"
	"Backend-VolunteerHub/src/services/activities"
	"Backend-VolunteerHub/src/services/volunteers"
	"Backend-VolunteerHub/src/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetMyProfile godoc
// @Summary      Get the authenticated user's directory entry
// @Tags         volunteers
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      404  {object}  models.ErrorResponse
// @Router       /volunteers/me [get]
func GetMyProfile(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Locals("userId").(string))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid user ID")
	}

	user, err := volunteers.GetByID(id)
	if err != nil {
		return utils.HandleError(c, http.StatusNotFound, err.Error())
	}
	return c.JSON(user)
}

// UpdateSkillsRequest replaces the volunteer's skill/service sets.
type UpdateSkillsRequest struct {
	Skills   []string `json:"skills"`
	Services []string `json:"services"`
}

// UpdateMySkills godoc
// @Summary      Update the volunteer's skills and services
// @Tags         volunteers
// @Accept       json
// @Produce      json
// @Param        body body controllers.UpdateSkillsRequest true "Skill and service sets"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /volunteers/me/skills [put]
func UpdateMySkills(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Locals("userId").(string))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid user ID")
	}

	var req UpdateSkillsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid input format")
	}

	if err := volunteers.UpdateSkills(id, req.Skills, req.Services); err != nil {
		if errors.Is(err, volunteers.ErrUserNotFound) {
			return utils.HandleError(c, http.StatusNotFound, err.Error())
		}
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(models.SuccessResponse{Message: "Skills updated"})
}

// ListVolunteers godoc
// @Summary      List active volunteers
// @Description  Staff view; optional skill/service filters match the publish fan-out query
// @Tags         volunteers
// @Produce      json
// @Param        page query int false "Page"
// @Param        limit query int false "Limit"
// @Param        skills query string false "Comma-separated skills"
// @Param        services query string false "Comma-separated services"
// @Success      200  {object}  models.PaginatedResponse
// @Router       /volunteers [get]
func ListVolunteers(c *fiber.Ctx) error {
	params := models.DefaultPagination()
	params.Page, _ = strconv.Atoi(c.Query("page", strconv.Itoa(params.Page)))
	params.Limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(params.Limit)))
	params.Search = c.Query("search", "")

	users, total, err := volunteers.ListVolunteers(params, splitQuery(c.Query("skills")), splitQuery(c.Query("services")))
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}
	return c.JSON(models.NewPaginatedResponse(users, total, params))
}

// GetMyHours godoc
// @Summary      Served-hours summary for the authenticated volunteer
// @Tags         volunteers
// @Produce      json
// @Success      200  {object}  models.SuccessResponse
// @Router       /volunteers/me/hours [get]
func GetMyHours(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Locals("userId").(string))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, "Invalid user ID")
	}

	total, acts, err := activities.VolunteerHours(id)
	if err != nil {
		return utils.HandleError(c, http.StatusInternalServerError, err.Error())
	}

	type entry struct {
		ActivityID string  `json:"activityId"`
		Title      string  `json:"title"`
		Date       string  `json:"date"`
		Hours      float64 `json:"hours"`
		Status     string  `json:"attendanceStatus"`
	}
	breakdown := make([]entry, 0, len(acts))
	for _, a := range acts {
		if idx := a.FindParticipant(id); idx >= 0 {
			p := a.Participants[idx]
			breakdown = append(breakdown, entry{
				ActivityID: a.ID.Hex(),
				Title:      a.Title,
				Date:       a.Date,
				Hours:      p.TotalHours,
				Status:     p.AttendanceStatus,
			})
		}
	}

	return c.JSON(models.SuccessResponse{
		Message: "Served hours",
		Data:    fiber.Map{"totalHours": total, "activities": breakdown},
	})
}
