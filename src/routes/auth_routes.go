package routes

import (
	"Backend-VolunteerHub/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// authRoutes registers the auth endpoints (login/register)
func authRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login) // 🔐 login
}
