package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/smartpark/cwsms/handlers"
	"github.com/smartpark/cwsms/middleware"
)

func PackageRoutes(app *fiber.App) {
	api := app.Group("/api")

	packages := api.Group("/packages", middleware.Protected())
	packages.Post("", handlers.CreatePackage)
	packages.Get("", handlers.GetAllPackages)
	packages.Get("/:packageNumber", handlers.GetPackageByNumber)
	packages.Put("/:packageNumber", handlers.UpdatePackage)
	packages.Delete("/:packageNumber", handlers.DeletePackage)
}
