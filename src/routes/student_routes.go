package routes

import (
	"Backend-PlacementCell/src/controllers"
	"Backend-PlacementCell/src/middleware"
	"Backend-PlacementCell/src/models"

	"github.com/gofiber/fiber/v2"
)

func studentRoutes(app *fiber.App) {
	studentGroup := app.Group("/students", middleware.AuthJWT)

	studentGroup.Get("/me", middleware.RequireRole(models.RoleStudent), controllers.GetMyProfile)
	studentGroup.Put("/me", middleware.RequireRole(models.RoleStudent), controllers.UpdateMyProfile)
	studentGroup.Get("/me/readiness", middleware.RequireRole(models.RoleStudent), controllers.GetMyReadiness)

	studentGroup.Get("/", middleware.RequireRole(models.RoleAdmin), controllers.GetStudents)
	studentGroup.Post("/shortlist", middleware.RequireRole(models.RoleAdmin), controllers.Shortlist)
	studentGroup.Get("/:studentId", middleware.RequireRole(models.RoleAdmin), controllers.GetStudent)
	studentGroup.Delete("/:studentId", middleware.RequireRole(models.RoleAdmin), controllers.DeleteStudent)
}
