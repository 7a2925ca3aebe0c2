package services

import (
	"github.com/smartpark/cwsms/models"
	"gorm.io/gorm"
)

// Deleting a car, a package or a service record must take every
// dependent row with it: payments hang off service records, service
// records hang off cars and packages. Each cascade below runs as one
// transaction so a failure at any step leaves the store untouched.
//
// All functions return the number of parent rows removed; zero means
// the key did not exist, which is not an error.

func DeleteCarCascade(db *gorm.DB, plateNumber string) (int64, error) {
	var deleted int64
	err := db.Transaction(func(tx *gorm.DB) error {
		records := tx.Model(&models.ServicePackage{}).
			Select("record_number").
			Where("plate_number = ?", plateNumber)
		if err := tx.Where("record_number IN (?)", records).Delete(&models.Payment{}).Error; err != nil {
			return err
		}

		if err := tx.Where("plate_number = ?", plateNumber).Delete(&models.ServicePackage{}).Error; err != nil {
			return err
		}

		result := tx.Where("plate_number = ?", plateNumber).Delete(&models.Car{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

func DeletePackageCascade(db *gorm.DB, packageNumber uint) (int64, error) {
	var deleted int64
	err := db.Transaction(func(tx *gorm.DB) error {
		records := tx.Model(&models.ServicePackage{}).
			Select("record_number").
			Where("package_number = ?", packageNumber)
		if err := tx.Where("record_number IN (?)", records).Delete(&models.Payment{}).Error; err != nil {
			return err
		}

		if err := tx.Where("package_number = ?", packageNumber).Delete(&models.ServicePackage{}).Error; err != nil {
			return err
		}

		result := tx.Where("package_number = ?", packageNumber).Delete(&models.Package{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

func DeleteServicePackageCascade(db *gorm.DB, recordNumber uint) (int64, error) {
	var deleted int64
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("record_number = ?", recordNumber).Delete(&models.Payment{}).Error; err != nil {
			return err
		}

		result := tx.Where("record_number = ?", recordNumber).Delete(&models.ServicePackage{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// DeletePaymentByNumber removes a single payment. Payments are leaves,
// so no cascade is involved.
func DeletePaymentByNumber(db *gorm.DB, paymentNumber uint) (int64, error) {
	result := db.Where("payment_number = ?", paymentNumber).Delete(&models.Payment{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
