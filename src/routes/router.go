package routes

import (
	"github.com/gofiber/fiber/v2"
)

func InitRoutes(app *fiber.App) {
	authRoutes(app)
	studentRoutes(app)
	driveRoutes(app)
	applicationRoutes(app)
	notificationRoutes(app)

	// Liveness check
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("✅ API is running...")
	})
}
