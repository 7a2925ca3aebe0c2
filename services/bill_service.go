package services

import (
	"fmt"
	"time"

	"github.com/smartpark/cwsms/models"
	"gorm.io/gorm"
)

// Bill is the flat receipt view of a payment together with the service
// record, car and package it belongs to. It is a pure projection of
// current store state; nothing is written or cached.
type Bill struct {
	BillNumber string       `json:"billNumber"`
	Date       string       `json:"date"`
	Customer   BillCustomer `json:"customer"`
	Car        BillCar      `json:"car"`
	Service    BillService  `json:"service"`
	Payment    BillPayment  `json:"payment"`
	Total      float64      `json:"total"`
}

type BillCustomer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type BillCar struct {
	PlateNumber string `json:"plateNumber"`
	Type        string `json:"type"`
	Size        string `json:"size"`
}

type BillService struct {
	PackageName string  `json:"packageName"`
	Description string  `json:"description"`
	ServiceDate string  `json:"serviceDate"`
	Price       float64 `json:"price"`
}

type BillPayment struct {
	AmountPaid    float64 `json:"amountPaid"`
	PaymentDate   string  `json:"paymentDate"`
	PaymentNumber uint    `json:"paymentNumber"`
}

type billRow struct {
	PaymentNumber      uint
	AmountPaid         float64
	PaymentDate        string
	PlateNumber        string
	ServiceDate        string
	CarType            string
	CarSize            string
	DriverName         string
	PhoneNumber        string
	PackageName        string
	PackageDescription string
	PackagePrice       float64
}

// BuildBill assembles the bill for a payment number. Returns
// gorm.ErrRecordNotFound when the payment does not exist.
func BuildBill(db *gorm.DB, paymentNumber uint) (*Bill, error) {
	var row billRow
	err := db.Model(&models.Payment{}).
		Select("payments.payment_number, payments.amount_paid, payments.payment_date, "+
			"service_packages.plate_number, service_packages.service_date, "+
			"cars.car_type, cars.car_size, cars.driver_name, cars.phone_number, "+
			"packages.package_name, packages.package_description, packages.package_price").
		Joins("JOIN service_packages ON payments.record_number = service_packages.record_number").
		Joins("JOIN cars ON service_packages.plate_number = cars.plate_number").
		Joins("JOIN packages ON service_packages.package_number = packages.package_number").
		Where("payments.payment_number = ?", paymentNumber).
		Take(&row).Error
	if err != nil {
		return nil, err
	}

	bill := Bill{
		BillNumber: fmt.Sprintf("BILL-%d", row.PaymentNumber),
		Date:       time.Now().Format("2006-01-02"),
		Customer: BillCustomer{
			Name:  row.DriverName,
			Phone: row.PhoneNumber,
		},
		Car: BillCar{
			PlateNumber: row.PlateNumber,
			Type:        row.CarType,
			Size:        row.CarSize,
		},
		Service: BillService{
			PackageName: row.PackageName,
			Description: row.PackageDescription,
			ServiceDate: row.ServiceDate,
			Price:       row.PackagePrice,
		},
		Payment: BillPayment{
			AmountPaid:    row.AmountPaid,
			PaymentDate:   row.PaymentDate,
			PaymentNumber: row.PaymentNumber,
		},
		// The bill totals what was actually paid, not the package price.
		Total: row.AmountPaid,
	}
	return &bill, nil
}
