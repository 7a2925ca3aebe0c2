package database

import (
	"fmt"
	"log"

	config "github.com/smartpark/cwsms/configs"
	"github.com/smartpark/cwsms/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt:            false,
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.Package{},
		&models.Car{},
		&models.ServicePackage{},
		&models.Payment{},
		&models.User{},
		&models.Session{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	fmt.Println("✅ Database migration successful")
}

// SeedData inserts the default wash package and the admin account when
// the tables are empty. Safe to run on every startup.
func SeedData() {
	var pkgCount int64
	if err := DB.Model(&models.Package{}).Count(&pkgCount).Error; err != nil {
		log.Fatalf("🔥 Failed to check for seed packages: %v", err)
	}
	if pkgCount == 0 {
		basicWash := models.Package{
			PackageName:        "Basic wash",
			PackageDescription: "Exterior hand wash",
			PackagePrice:       5000.00,
		}
		if err := DB.Create(&basicWash).Error; err != nil {
			log.Fatalf("🔥 Failed to seed default package: %v", err)
		}
		log.Println("✅ Default package seeded successfully")
	}

	adminUsername := config.ConfigOr("ADMIN_USERNAME", "admin")
	adminPassword := config.ConfigOr("ADMIN_PASSWORD", "admin123")

	var count int64
	if err := DB.Model(&models.User{}).Where("username = ?", adminUsername).Count(&count).Error; err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
	}
	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
	}

	adminUser := models.User{
		Username: adminUsername,
		Password: string(hashedPassword),
	}
	if err := DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
	}

	log.Println("✅ Admin user seeded successfully")
}
