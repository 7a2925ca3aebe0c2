package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/smartpark/cwsms/handlers"
	"github.com/smartpark/cwsms/middleware"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handlers.Login)
	auth.Post("/logout", handlers.Logout)
	auth.Get("/check", handlers.CheckAuth)

	auth.Post("/register", middleware.Protected(), handlers.Register)
}
