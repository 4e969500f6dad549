package routes

import (
	"Backend-PlacementCell/src/controllers"
	"Backend-PlacementCell/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func notificationRoutes(app *fiber.App) {
	notificationGroup := app.Group("/notifications", middleware.AuthJWT)
	notificationGroup.Get("/", controllers.GetMyNotifications)
	notificationGroup.Patch("/read-all", controllers.MarkAllNotificationsRead)
	notificationGroup.Patch("/:notificationId/read", controllers.MarkNotificationRead)
}
