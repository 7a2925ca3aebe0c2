package models

// ServicePackage links a car to the package it was washed with on a
// given date. Dates travel as YYYY-MM-DD strings end to end, so the
// column is a date but the field stays a string.
type ServicePackage struct {
	RecordNumber  uint   `gorm:"primaryKey;autoIncrement" json:"recordNumber"`
	PlateNumber   string `gorm:"size:20;not null;index" json:"plateNumber"`
	PackageNumber uint   `gorm:"not null;index" json:"packageNumber"`
	ServiceDate   string `gorm:"type:date;not null" json:"serviceDate"`

	Car     Car     `gorm:"belongsTo;foreignkey:PlateNumber" json:"-"`
	Package Package `gorm:"belongsTo;foreignkey:PackageNumber" json:"-"`
}
