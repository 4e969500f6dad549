package routes

import (
	"Backend-PlacementCell/src/controllers"
	"Backend-PlacementCell/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func authRoutes(app *fiber.App) {
	auth := app.Group("/auth")
	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)
	auth.Post("/refresh", controllers.Refresh)
	auth.Get("/me", middleware.AuthJWT, controllers.Me)
}
