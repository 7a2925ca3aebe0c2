package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/smartpark/cwsms/handlers"
	"github.com/smartpark/cwsms/middleware"
)

func PaymentRoutes(app *fiber.App) {
	api := app.Group("/api")

	payments := api.Group("/payments", middleware.Protected())
	payments.Post("", handlers.CreatePayment)
	payments.Get("", handlers.GetAllPayments)
	payments.Get("/date-range", handlers.GetPaymentsByDateRange)
	payments.Get("/bill/:paymentNumber", handlers.GenerateBill)
	payments.Get("/bill/:paymentNumber/pdf", handlers.GenerateBillPDF)
	payments.Get("/record/:recordNumber", handlers.GetPaymentByRecordNumber)
	payments.Get("/:paymentNumber", handlers.GetPaymentByPaymentNumber)
	payments.Put("/:paymentNumber", handlers.UpdatePayment)
	payments.Delete("/:paymentNumber", handlers.DeletePayment)
}
