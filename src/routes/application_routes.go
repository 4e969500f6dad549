package routes

import (
	"Backend-PlacementCell/src/controllers"
	"Backend-PlacementCell/src/middleware"
	"Backend-PlacementCell/src/models"

	"github.com/gofiber/fiber/v2"
)

func applicationRoutes(app *fiber.App) {
	appGroup := app.Group("/applications", middleware.AuthJWT)

	appGroup.Post("/", middleware.RequireRole(models.RoleStudent), controllers.Apply)
	appGroup.Get("/me", middleware.RequireRole(models.RoleStudent), controllers.GetMyApplications)
	appGroup.Delete("/:applicationId", middleware.RequireRole(models.RoleStudent), controllers.Withdraw)
	appGroup.Put("/:applicationId/respond", middleware.RequireRole(models.RoleStudent), controllers.RespondToOffer)

	appGroup.Get("/drive/:driveId", middleware.RequireRole(models.RoleAdmin), controllers.GetApplicationsByDrive)
	appGroup.Put("/:applicationId/status", middleware.RequireRole(models.RoleAdmin), controllers.AdminSetStatus)
	appGroup.Put("/:applicationId/rounds", middleware.RequireRole(models.RoleAdmin), controllers.UpsertRound)
	appGroup.Patch("/:applicationId/review", middleware.RequireRole(models.RoleAdmin), controllers.SetReview)

	appGroup.Get("/:applicationId", controllers.GetApplication)
}
