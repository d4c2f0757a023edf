package routes

import (
	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	authRoutes(app)
	activityRoutes(app)
	volunteerRoutes(app)

	// Route to verify the API is up
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
