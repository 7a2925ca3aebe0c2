package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/smartpark/cwsms/handlers"
	"github.com/smartpark/cwsms/middleware"
)

func CarRoutes(app *fiber.App) {
	api := app.Group("/api")

	cars := api.Group("/cars", middleware.Protected())
	cars.Post("", handlers.CreateCar)
	cars.Get("", handlers.GetAllCars)
	cars.Get("/:plateNumber", handlers.GetCarByPlateNumber)
	cars.Put("/:plateNumber", handlers.UpdateCar)
	cars.Delete("/:plateNumber", handlers.DeleteCar)
}
