package routes

import (
	"Backend-VolunteerHub/src/controllers"
	"Backend-VolunteerHub/src/middleware"
	"Backend-VolunteerHub/src/models"

	"github.com/gofiber/fiber/v2"
)

// volunteerRoutes registers volunteer profile and matching endpoints.
func volunteerRoutes(app *fiber.App) {
	volunteerRoutes := app.Group("/volunteers")
	volunteerRoutes.Use(middleware.AuthJWT)

	volunteerRoutes.Get("/me", controllers.GetMyProfile)
	volunteerRoutes.Put("/me/skills", controllers.UpdateMySkills)
	volunteerRoutes.Get("/me/hours", controllers.GetMyHours)
	volunteerRoutes.Get("/me/matches", controllers.GetMatchedActivities)

	volunteerRoutes.Get("/", middleware.RequireRole(models.RoleAdmin, models.RoleStaff), controllers.ListVolunteers)
}
