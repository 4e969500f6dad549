package routes

import (
	"Backend-PlacementCell/src/controllers"
	"Backend-PlacementCell/src/middleware"
	"Backend-PlacementCell/src/models"

	"github.com/gofiber/fiber/v2"
)

func driveRoutes(app *fiber.App) {
	driveGroup := app.Group("/drives", middleware.AuthJWT)

	driveGroup.Get("/", controllers.GetDrives)
	driveGroup.Get("/:driveId", controllers.GetDrive)

	driveGroup.Post("/", middleware.RequireRole(models.RoleAdmin), controllers.CreateDrive)
	driveGroup.Put("/:driveId", middleware.RequireRole(models.RoleAdmin), controllers.UpdateDrive)
	driveGroup.Patch("/:driveId/cancel", middleware.RequireRole(models.RoleAdmin), controllers.CancelDrive)
	driveGroup.Delete("/:driveId", middleware.RequireRole(models.RoleAdmin), controllers.DeleteDrive)
}
