package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/smartpark/cwsms/handlers"
	"github.com/smartpark/cwsms/middleware"
)

func ServicePackageRoutes(app *fiber.App) {
	api := app.Group("/api")

	records := api.Group("/service-packages", middleware.Protected())
	records.Post("", handlers.CreateServicePackage)
	records.Get("", handlers.GetAllServicePackages)
	records.Get("/date-range", handlers.GetServicePackagesByDateRange)
	records.Get("/:recordNumber", handlers.GetServicePackageByRecordNumber)
	records.Put("/:recordNumber", handlers.UpdateServicePackage)
	records.Delete("/:recordNumber", handlers.DeleteServicePackage)
}
