package models

import (
	"time"
)

// Car is keyed by its plate number; there is no surrogate id.
type Car struct {
	PlateNumber string `gorm:"size:20;primaryKey" json:"plateNumber"`
	CarType     string `gorm:"size:50;not null" json:"carType"`
	CarSize     string `gorm:"size:20;not null" json:"carSize"`
	DriverName  string `gorm:"size:100;not null" json:"driverName"`
	PhoneNumber string `gorm:"size:15;not null" json:"phoneNumber"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
