package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/smartpark/cwsms/handlers"
	"github.com/smartpark/cwsms/middleware"
)

func UserRoutes(app *fiber.App) {
	api := app.Group("/api")

	users := api.Group("/users", middleware.Protected())
	users.Get("", handlers.GetAllUsers)
	users.Put("/:userId", handlers.UpdateUser)
	users.Delete("/:userId", handlers.DeleteUser)
}
