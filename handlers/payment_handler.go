package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/smartpark/cwsms/database"
	"github.com/smartpark/cwsms/models"
	"github.com/smartpark/cwsms/services"
	"gorm.io/gorm"
)

type PaymentRequest struct {
	RecordNumber uint    `json:"recordNumber" validate:"required"`
	AmountPaid   float64 `json:"amountPaid" validate:"required,gt=0"`
	PaymentDate  string  `json:"paymentDate" validate:"required,datetime=2006-01-02"`
}

// PaymentRow is a payment flattened together with its service record,
// car and package columns, mirroring the bill projection join.
type PaymentRow struct {
	PaymentNumber      uint    `json:"paymentNumber"`
	RecordNumber       uint    `json:"recordNumber"`
	AmountPaid         float64 `json:"amountPaid"`
	PaymentDate        string  `json:"paymentDate"`
	PlateNumber        string  `json:"plateNumber"`
	ServiceDate        string  `json:"serviceDate"`
	CarType            string  `json:"carType"`
	CarSize            string  `json:"carSize"`
	DriverName         string  `json:"driverName"`
	PhoneNumber        string  `json:"phoneNumber"`
	PackageName        string  `json:"packageName"`
	PackageDescription string  `json:"packageDescription"`
	PackagePrice       float64 `json:"packagePrice"`
}

func paymentQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Payment{}).
		Select("payments.payment_number, payments.record_number, payments.amount_paid, payments.payment_date, " +
			"service_packages.plate_number, service_packages.service_date, " +
			"cars.car_type, cars.car_size, cars.driver_name, cars.phone_number, " +
			"packages.package_name, packages.package_description, packages.package_price").
		Joins("JOIN service_packages ON payments.record_number = service_packages.record_number").
		Joins("JOIN cars ON service_packages.plate_number = cars.plate_number").
		Joins("JOIN packages ON service_packages.package_number = packages.package_number")
}

func paymentRecordExists(recordNumber uint) (bool, error) {
	var count int64
	err := database.DB.Model(&models.ServicePackage{}).Where("record_number = ?", recordNumber).Count(&count).Error
	return count > 0, err
}

func CreatePayment(c *fiber.Ctx) error {
	var req PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		if req.AmountPaid <= 0 && req.RecordNumber != 0 && req.PaymentDate != "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Amount paid must be greater than 0"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "All fields are required"})
	}

	ok, err := paymentRecordExists(req.RecordNumber)
	if err != nil {
		log.Printf("Create payment lookup error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Internal server error"})
	}
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid service record number"})
	}

	payment := models.Payment{
		RecordNumber: req.RecordNumber,
		AmountPaid:   req.AmountPaid,
		PaymentDate:  req.PaymentDate,
	}
	if err := database.DB.Create(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid service record number"})
		}
		log.Printf("Create payment error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Internal server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Payment created successfully",
		"data":    payment,
	})
}

func GetAllPayments(c *fiber.Ctx) error {
	var rows []PaymentRow
	if err := paymentQuery(database.DB).Order("payments.payment_number DESC").Find(&rows).Error; err != nil {
		log.Printf("Get all payments error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Internal server error"})
	}

	return c.JSON(fiber.Map{"success": true, "data": rows})
}

func GetPaymentByPaymentNumber(c *fiber.Ctx) error {
	paymentNumber, err := c.ParamsInt("paymentNumber")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid payment number"})
	}

	var row PaymentRow
	err = paymentQuery(database.DB).
		Where("payments.payment_number = ?", paymentNumber).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Payment not found"})
		}
		log.Printf("Get payment error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Internal server error"})
	}

	return c.JSON(fiber.Map{"success": true, "data": row})
}

func GetPaymentByRecordNumber(c *fiber.Ctx) error {
	recordNumber, err := c.ParamsInt("recordNumber")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid record number"})
	}

	var row PaymentRow
	err = paymentQuery(database.DB).
		Where("payments.record_number = ?", recordNumber).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Payment not found for this service record"})
		}
		log.Printf("Get payment by record number error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Internal server error"})
	}

	return c.JSON(fiber.Map{"success": true, "data": row})
}

func GetPaymentsByDateRange(c *fiber.Ctx) error {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	if startDate == "" || endDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Start date and end date are required"})
	}

	var rows []PaymentRow
	err := paymentQuery(database.DB).
		Where("payments.payment_date BETWEEN ? AND ?", startDate, endDate).
		Order("payments.payment_date DESC").
		Find(&rows).Error
	if err != nil {
		log.Printf("Get payments by date range error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Internal server error"})
	}

	return c.JSON(fiber.Map{"success": true, "data": rows})
}

func UpdatePayment(c *fiber.Ctx) error {
	paymentNumber, err := c.ParamsInt("paymentNumber")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid payment number"})
	}

	var req PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		if req.AmountPaid <= 0 && req.RecordNumber != 0 && req.PaymentDate != "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Amount paid must be greater than 0"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "All fields are required"})
	}

	ok, err := paymentRecordExists(req.RecordNumber)
	if err != nil {
		log.Printf("Update payment lookup error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Internal server error"})
	}
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid service record number"})
	}

	result := database.DB.Model(&models.Payment{}).
		Where("payment_number = ?", paymentNumber).
		Updates(map[string]interface{}{
			"record_number": req.RecordNumber,
			"amount_paid":   req.AmountPaid,
			"payment_date":  req.PaymentDate,
		})
	if result.Error != nil {
		log.Printf("Update payment error: %v", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Internal server error"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Payment not found"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Payment updated successfully"})
}

func DeletePayment(c *fiber.Ctx) error {
	paymentNumber, err := c.ParamsInt("paymentNumber")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid payment number"})
	}

	deleted, err := services.DeletePaymentByNumber(database.DB, uint(paymentNumber))
	if err != nil {
		log.Printf("Delete payment error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Internal server error"})
	}
	if deleted == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Payment not found"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Payment deleted successfully"})
}

func GenerateBill(c *fiber.Ctx) error {
	paymentNumber, err := c.ParamsInt("paymentNumber")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid payment number"})
	}

	bill, err := services.BuildBill(database.DB, uint(paymentNumber))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Payment not found"})
		}
		log.Printf("Generate bill error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Internal server error"})
	}

	return c.JSON(fiber.Map{"success": true, "data": bill})
}

func GenerateBillPDF(c *fiber.Ctx) error {
	paymentNumber, err := c.ParamsInt("paymentNumber")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid payment number"})
	}

	bill, err := services.BuildBill(database.DB, uint(paymentNumber))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Payment not found"})
		}
		log.Printf("Generate bill error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Internal server error"})
	}

	pdfBytes, err := services.GenerateReceiptPDF(bill)
	if err != nil {
		log.Printf("Generate receipt PDF error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to generate receipt PDF"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.pdf"`, bill.BillNumber))
	return c.Send(pdfBytes)
}
