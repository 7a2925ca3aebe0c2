package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/smartpark/cwsms/database"
	"github.com/smartpark/cwsms/models"
	"github.com/smartpark/cwsms/services"
	"gorm.io/gorm"
)

type ServicePackageRequest struct {
	PlateNumber   string `json:"plateNumber" validate:"required,max=20"`
	PackageNumber uint   `json:"packageNumber" validate:"required"`
	ServiceDate   string `json:"serviceDate" validate:"required,datetime=2006-01-02"`
}

// ServicePackageRow is a service record flattened together with the car
// and package columns the frontend lists alongside it.
type ServicePackageRow struct {
	RecordNumber       uint    `json:"recordNumber"`
	PlateNumber        string  `json:"plateNumber"`
	PackageNumber      uint    `json:"packageNumber"`
	ServiceDate        string  `json:"serviceDate"`
	CarType            string  `json:"carType"`
	CarSize            string  `json:"carSize"`
	DriverName         string  `json:"driverName"`
	PhoneNumber        string  `json:"phoneNumber"`
	PackageName        string  `json:"packageName"`
	PackageDescription string  `json:"packageDescription"`
	PackagePrice       float64 `json:"packagePrice"`
}

func servicePackageQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&models.ServicePackage{}).
		Select("service_packages.record_number, service_packages.plate_number, service_packages.package_number, service_packages.service_date, " +
			"cars.car_type, cars.car_size, cars.driver_name, cars.phone_number, " +
			"packages.package_name, packages.package_description, packages.package_price").
		Joins("JOIN cars ON service_packages.plate_number = cars.plate_number").
		Joins("JOIN packages ON service_packages.package_number = packages.package_number")
}

// serviceParentsExist verifies the referenced car and package before a
// create or update, so an orphan reference is rejected up front instead
// of surfacing as a bare constraint error.
func serviceParentsExist(plateNumber string, packageNumber uint) (bool, error) {
	var carCount int64
	if err := database.DB.Model(&models.Car{}).Where("plate_number = ?", plateNumber).Count(&carCount).Error; err != nil {
		return false, err
	}
	var pkgCount int64
	if err := database.DB.Model(&models.Package{}).Where("package_number = ?", packageNumber).Count(&pkgCount).Error; err != nil {
		return false, err
	}
	return carCount > 0 && pkgCount > 0, nil
}

func CreateServicePackage(c *fiber.Ctx) error {
	var req ServicePackageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "All fields are required"})
	}

	ok, err := serviceParentsExist(req.PlateNumber, req.PackageNumber)
	if err != nil {
		log.Printf("Create service record lookup error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Internal server error"})
	}
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid plate number or package number"})
	}

	record := models.ServicePackage{
		PlateNumber:   req.PlateNumber,
		PackageNumber: req.PackageNumber,
		ServiceDate:   req.ServiceDate,
	}
	if err := database.DB.Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid plate number or package number"})
		}
		log.Printf("Create service record error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Internal server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Service record created successfully",
		"data":    record,
	})
}

func GetAllServicePackages(c *fiber.Ctx) error {
	var rows []ServicePackageRow
	if err := servicePackageQuery(database.DB).Order("service_packages.record_number DESC").Find(&rows).Error; err != nil {
		log.Printf("Get all service records error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Internal server error"})
	}

	return c.JSON(fiber.Map{"success": true, "data": rows})
}

func GetServicePackageByRecordNumber(c *fiber.Ctx) error {
	recordNumber, err := c.ParamsInt("recordNumber")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid record number"})
	}

	var row ServicePackageRow
	err = servicePackageQuery(database.DB).
		Where("service_packages.record_number = ?", recordNumber).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Service record not found"})
		}
		log.Printf("Get service record error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Internal server error"})
	}

	return c.JSON(fiber.Map{"success": true, "data": row})
}

func GetServicePackagesByDateRange(c *fiber.Ctx) error {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	if startDate == "" || endDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Start date and end date are required"})
	}

	var rows []ServicePackageRow
	err := servicePackageQuery(database.DB).
		Where("service_packages.service_date BETWEEN ? AND ?", startDate, endDate).
		Order("service_packages.service_date DESC").
		Find(&rows).Error
	if err != nil {
		log.Printf("Get service records by date range error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Internal server error"})
	}

	return c.JSON(fiber.Map{"success": true, "data": rows})
}

func UpdateServicePackage(c *fiber.Ctx) error {
	recordNumber, err := c.ParamsInt("recordNumber")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid record number"})
	}

	var req ServicePackageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "All fields are required"})
	}

	ok, err := serviceParentsExist(req.PlateNumber, req.PackageNumber)
	if err != nil {
		log.Printf("Update service record lookup error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Internal server error"})
	}
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid plate number or package number"})
	}

	result := database.DB.Model(&models.ServicePackage{}).
		Where("record_number = ?", recordNumber).
		Updates(map[string]interface{}{
			"plate_number":   req.PlateNumber,
			"package_number": req.PackageNumber,
			"service_date":   req.ServiceDate,
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid plate number or package number"})
		}
		log.Printf("Update service record error: %v", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Internal server error"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Service record not found"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Service record updated successfully"})
}

func DeleteServicePackage(c *fiber.Ctx) error {
	recordNumber, err := c.ParamsInt("recordNumber")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid record number"})
	}

	deleted, err := services.DeleteServicePackageCascade(database.DB, uint(recordNumber))
	if err != nil {
		log.Printf("Delete service record error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to delete service record. Please try again."})
	}
	if deleted == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Service record not found"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Service record and all related payments deleted successfully"})
}
