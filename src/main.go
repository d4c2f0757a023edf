package main

import (
	_ "Backend-VolunteerHub/docs"
	"Backend-VolunteerHub/src/database"
	"Backend-VolunteerHub/src/jobs"
	"Backend-VolunteerHub/src/routes"
	"Backend-VolunteerHub/src/services/activities"
	"Backend-VolunteerHub/src/services/notifications/email"
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/hibiken/asynq"
)

func main() {

	// Connect to MongoDB
	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Redis and Asynq are optional; without them the app runs inline.
	database.InitRedis()
	database.InitAsynq()

	if database.RedisURI != "" {
		go jobs.StartWorker(database.RedisURI, map[string]asynq.HandlerFunc{
			jobs.TypeCompleteActivity:   activities.HandleCompleteActivityTask,
			jobs.TypeNotifyPublished:    email.HandleNotifyPublished,
			jobs.TypeNotifyCancelled:    email.HandleNotifyCancelled,
			jobs.TypeNotifyRegistration: email.HandleNotifyRegistration,
		})
	}

	app := fiber.New()

	// ✅ CORS Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false, // ❌ must stay false with "*"
	}))

	// Swagger at /swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app)

	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888"
	}

	log.Println("Server is running on port " + appURI)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI)))
	if err != nil {
		log.Fatal(err)
	}

}
