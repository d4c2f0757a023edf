package routes

import (
	"Backend-VolunteerHub/src/controllers"
	"Backend-VolunteerHub/src/middleware"
	"Backend-VolunteerHub/src/models"

	"github.com/gofiber/fiber/v2"
)

// activityRoutes registers the Activity API, including participation and
// attendance endpoints that operate on a single activity.
func activityRoutes(app *fiber.App) {
	activityRoutes := app.Group("/activities")
	activityRoutes.Use(middleware.AuthJWT)

	activityRoutes.Get("/", controllers.GetAllActivities)
	activityRoutes.Get("/:id", controllers.GetActivityByID)

	staffOnly := middleware.RequireRole(models.RoleAdmin, models.RoleStaff)
	activityRoutes.Post("/", staffOnly, controllers.CreateActivity)
	activityRoutes.Put("/:id", staffOnly, controllers.UpdateActivity)
	activityRoutes.Patch("/:id/status", staffOnly, controllers.ChangeActivityStatus)
	activityRoutes.Delete("/:id", staffOnly, controllers.DeleteActivity)

	// Participation
	activityRoutes.Post("/:id/join", controllers.JoinActivity)
	activityRoutes.Post("/:id/leave", controllers.LeaveActivity)

	// Attendance
	activityRoutes.Post("/:id/time-in", staffOnly, controllers.RecordTimeIn)
	activityRoutes.Post("/:id/time-out", staffOnly, controllers.RecordTimeOut)

	// --- QR Check-in System ---
	activityRoutes.Post("/:id/qr-token", staffOnly, controllers.CreateCheckinToken)
	app.Post("/checkin/:token", middleware.AuthJWT, controllers.ClaimCheckinToken)
}
