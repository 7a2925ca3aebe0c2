package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
	config "github.com/smartpark/cwsms/configs"
	"github.com/smartpark/cwsms/database"
	"github.com/smartpark/cwsms/jobs"
	"github.com/smartpark/cwsms/routes"
)

func main() {
	database.ConnectDB()
	database.Migrate()
	database.SeedData()

	c := cron.New()
	c.AddFunc("@hourly", jobs.PurgeExpiredSessions)
	go c.Start()
	log.Println("✅ Cron job for session cleanup scheduled successfully.")

	app := fiber.New(fiber.Config{
		Prefork:           false,
		AppName:           "SmartPark CWSMS",
		CaseSensitive:     true,
		StrictRouting:     true,
		EnablePrintRoutes: true,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOr("CORS_ORIGINS", "http://localhost:5173"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"success":   true,
			"message":   "SmartPark CWSMS API is running",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	routes.AuthRoutes(app)
	routes.CarRoutes(app)
	routes.PackageRoutes(app)
	routes.ServicePackageRoutes(app)
	routes.PaymentRoutes(app)
	routes.UserRoutes(app)

	port := config.ConfigOr("PORT", "8080")
	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
