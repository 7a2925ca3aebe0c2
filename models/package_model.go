package models

type Package struct {
	PackageNumber      uint    `gorm:"primaryKey;autoIncrement" json:"packageNumber"`
	PackageName        string  `gorm:"size:100;not null" json:"packageName"`
	PackageDescription string  `gorm:"type:text" json:"packageDescription"`
	PackagePrice       float64 `gorm:"type:numeric(10,2);not null" json:"packagePrice"`
}
