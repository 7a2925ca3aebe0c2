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

type PackageRequest struct {
	PackageName        string  `json:"packageName" validate:"required,max=100"`
	PackageDescription string  `json:"packageDescription" validate:"required"`
	PackagePrice       float64 `json:"packagePrice" validate:"required,gt=0"`
}

func CreatePackage(c *fiber.Ctx) error {
	var req PackageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		if req.PackagePrice <= 0 && req.PackageName != "" && req.PackageDescription != "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Package price must be greater than 0"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "All fields are required"})
	}

	pkg := models.Package{
		PackageName:        req.PackageName,
		PackageDescription: req.PackageDescription,
		PackagePrice:       req.PackagePrice,
	}
	if err := database.DB.Create(&pkg).Error; err != nil {
		log.Printf("Create package error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Internal server error"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Package created successfully",
		"data":    pkg,
	})
}

func GetAllPackages(c *fiber.Ctx) error {
	var packages []models.Package
	if err := database.DB.Order("package_number").Find(&packages).Error; err != nil {
		log.Printf("Get all packages error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Internal server error"})
	}

	return c.JSON(fiber.Map{"success": true, "data": packages})
}

func GetPackageByNumber(c *fiber.Ctx) error {
	packageNumber, err := c.ParamsInt("packageNumber")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid package number"})
	}

	var pkg models.Package
	if err := database.DB.Where("package_number = ?", packageNumber).First(&pkg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Package not found"})
		}
		log.Printf("Get package error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Internal server error"})
	}

	return c.JSON(fiber.Map{"success": true, "data": pkg})
}

func UpdatePackage(c *fiber.Ctx) error {
	packageNumber, err := c.ParamsInt("packageNumber")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid package number"})
	}

	var req PackageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		if req.PackagePrice <= 0 && req.PackageName != "" && req.PackageDescription != "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Package price must be greater than 0"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "All fields are required"})
	}

	result := database.DB.Model(&models.Package{}).
		Where("package_number = ?", packageNumber).
		Updates(map[string]interface{}{
			"package_name":        req.PackageName,
			"package_description": req.PackageDescription,
			"package_price":       req.PackagePrice,
		})
	if result.Error != nil {
		log.Printf("Update package error: %v", result.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Internal server error"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Package not found"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Package updated successfully"})
}

func DeletePackage(c *fiber.Ctx) error {
	packageNumber, err := c.ParamsInt("packageNumber")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid package number"})
	}

	deleted, err := services.DeletePackageCascade(database.DB, uint(packageNumber))
	if err != nil {
		log.Printf("Delete package error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to delete package. Please try again."})
	}
	if deleted == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Package not found"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Package and all related records deleted successfully"})
}
