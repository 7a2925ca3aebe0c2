package handlers

import (
	"errors"
	"log"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/smartpark/cwsms/database"
	"github.com/smartpark/cwsms/models"
	"github.com/smartpark/cwsms/services"
	"gorm.io/gorm"
)

type CreateCarRequest struct {
	PlateNumber string `json:"plateNumber" validate:"required,max=20"`
	CarType     string `json:"carType" validate:"required,max=50"`
	CarSize     string `json:"carSize" validate:"required,max=20"`
	DriverName  string `json:"driverName" validate:"required,max=100"`
	PhoneNumber string `json:"phoneNumber" validate:"required,max=15"`
}

type UpdateCarRequest struct {
	CarType     string `json:"carType" validate:"required,max=50"`
	CarSize     string `json:"carSize" validate:"required,max=20"`
	DriverName  string `json:"driverName" validate:"required,max=100"`
	PhoneNumber string `json:"phoneNumber" validate:"required,max=15"`
}

// plateParam decodes the plate number route parameter. Plates can carry
// spaces, which arrive percent-encoded.
func plateParam(c *fiber.Ctx) string {
	raw := c.Params("plateNumber")
	if decoded, err := url.QueryUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

func CreateCar(c *fiber.Ctx) error {
	var req CreateCarRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "All fields are required"})
	}

	var count int64
	if err := database.DB.Model(&models.Car{}).Where("plate_number = ?", req.PlateNumber).Count(&count).Error; err != nil {
		log.Printf("Create car lookup error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Internal server error"})
	}
	if count > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "message": "Car with this plate number already exists"})
	}

	car := models.Car{
		PlateNumber: req.PlateNumber,
		CarType:     req.CarType,
		CarSize:     req.CarSize,
		DriverName:  req.DriverName,
		PhoneNumber: req.PhoneNumber,
	}
	if err := database.DB.Create(&car).Error; err != nil {
		log.Printf("Create car error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Internal server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Car created successfully",
		"data":    car,
	})
}

func GetAllCars(c *fiber.Ctx) error {
	var cars []models.Car
	if err := database.DB.Order("plate_number").Find(&cars).Error; err != nil {
		log.Printf("Get all cars error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Internal server error"})
	}

	return c.JSON(fiber.Map{"success": true, "data": cars})
}

func GetCarByPlateNumber(c *fiber.Ctx) error {
	plateNumber := plateParam(c)

	var car models.Car
	if err := database.DB.Where("plate_number = ?", plateNumber).First(&car).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Car not found"})
		}
		log.Printf("Get car error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Internal server error"})
	}

	return c.JSON(fiber.Map{"success": true, "data": car})
}

func UpdateCar(c *fiber.Ctx) error {
	plateNumber := plateParam(c)

	var req UpdateCarRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "All fields are required"})
	}

	result := database.DB.Model(&models.Car{}).
		Where("plate_number = ?", plateNumber).
		Updates(map[string]interface{}{
			"car_type":     req.CarType,
			"car_size":     req.CarSize,
			"driver_name":  req.DriverName,
			"phone_number": req.PhoneNumber,
		})
	if result.Error != nil {
		log.Printf("Update car error: %v", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Internal server error"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Car not found"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Car updated successfully"})
}

func DeleteCar(c *fiber.Ctx) error {
	plateNumber := plateParam(c)

	deleted, err := services.DeleteCarCascade(database.DB, plateNumber)
	if err != nil {
		log.Printf("Delete car error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to delete car. Please try again."})
	}
	if deleted == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Car not found"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Car and all related records deleted successfully"})
}
