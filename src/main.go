package main

import (
	"fmt"
	"log"
	"net/url"
	"os"

	_ "Backend-PlacementCell/docs"
	"Backend-PlacementCell/src/controllers"
	"Backend-PlacementCell/src/database"
	"Backend-PlacementCell/src/jobs"
	"Backend-PlacementCell/src/repositories"
	"Backend-PlacementCell/src/routes"
	"Backend-PlacementCell/src/services/applications"
	"Backend-PlacementCell/src/services/drives"
	"Backend-PlacementCell/src/services/notifications"
	"Backend-PlacementCell/src/services/students"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

// @title        Placement Cell API
// @version      1.0
// @description  REST API for campus placement management
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {

	if err := database.ConnectMongoDB(); err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}
	if err := database.EnsureIndexes(); err != nil {
		log.Fatalf("Error creating indexes: %v", err)
	}

	database.InitRedis()
	database.InitAsynq()
	jobs.StartWorker()

	// Wire repositories into the services; mongo in production, the
	// in-memory ones exist for the test suite.
	studentRepo := repositories.NewMongoStudentRepository()
	driveRepo := repositories.NewMongoDriveRepository()
	applicationRepo := repositories.NewMongoApplicationRepository()
	notificationRepo := repositories.NewMongoNotificationRepository()

	dispatcher := notifications.NewDispatcher(notificationRepo)

	controllers.ApplicationService = applications.NewService(studentRepo, driveRepo, applicationRepo, dispatcher)
	controllers.StudentService = students.NewService(studentRepo, driveRepo, applicationRepo)
	controllers.DriveService = drives.NewService(driveRepo, applicationRepo, dispatcher)

	app := fiber.New()

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "*"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app)

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		appPort = "8888"
	}

	log.Println("Server is running on port " + appPort)
	if err := app.Listen(fmt.Sprintf(":%s", url.PathEscape(appPort))); err != nil {
		log.Fatal(err)
	}
}
