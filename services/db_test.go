package services

import (
	"testing"

	"github.com/smartpark/cwsms/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite store limited to one connection,
// so every query and transaction sees the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Package{},
		&models.Car{},
		&models.ServicePackage{},
		&models.Payment{},
		&models.User{},
		&models.Session{},
	))
	return db
}

type fixture struct {
	car       models.Car
	otherCar  models.Car
	pkg       models.Package
	record    models.ServicePackage
	payment   models.Payment
	otherRec  models.ServicePackage
	otherPay  models.Payment
	otherCarR models.ServicePackage
}

// seedWashHistory builds two cars with one service record and one
// payment each, sharing a package, plus a second record on the first
// car. Cascade tests assert the unrelated half stays intact.
func seedWashHistory(t *testing.T, db *gorm.DB) fixture {
	t.Helper()

	f := fixture{
		car:      models.Car{PlateNumber: "RAB123A", CarType: "Sedan", CarSize: "Medium", DriverName: "Jean Bosco", PhoneNumber: "0788123456"},
		otherCar: models.Car{PlateNumber: "RAC456B", CarType: "SUV", CarSize: "Large", DriverName: "Alice Uwase", PhoneNumber: "0722987654"},
		pkg:      models.Package{PackageName: "Basic wash", PackageDescription: "Exterior hand wash", PackagePrice: 5000},
	}
	require.NoError(t, db.Create(&f.car).Error)
	require.NoError(t, db.Create(&f.otherCar).Error)
	require.NoError(t, db.Create(&f.pkg).Error)

	f.record = models.ServicePackage{PlateNumber: f.car.PlateNumber, PackageNumber: f.pkg.PackageNumber, ServiceDate: "2025-08-01"}
	require.NoError(t, db.Create(&f.record).Error)
	f.otherRec = models.ServicePackage{PlateNumber: f.car.PlateNumber, PackageNumber: f.pkg.PackageNumber, ServiceDate: "2025-08-15"}
	require.NoError(t, db.Create(&f.otherRec).Error)
	f.otherCarR = models.ServicePackage{PlateNumber: f.otherCar.PlateNumber, PackageNumber: f.pkg.PackageNumber, ServiceDate: "2025-08-10"}
	require.NoError(t, db.Create(&f.otherCarR).Error)

	f.payment = models.Payment{RecordNumber: f.record.RecordNumber, AmountPaid: 5000, PaymentDate: "2025-08-01"}
	require.NoError(t, db.Create(&f.payment).Error)
	f.otherPay = models.Payment{RecordNumber: f.otherCarR.RecordNumber, AmountPaid: 7500, PaymentDate: "2025-08-10"}
	require.NoError(t, db.Create(&f.otherPay).Error)

	return f
}

func count(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	tx := db.Model(model)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	require.NoError(t, tx.Count(&n).Error)
	return n
}
