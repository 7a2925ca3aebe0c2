package models

type Payment struct {
	PaymentNumber uint    `gorm:"primaryKey;autoIncrement" json:"paymentNumber"`
	RecordNumber  uint    `gorm:"not null;index" json:"recordNumber"`
	AmountPaid    float64 `gorm:"type:numeric(10,2);not null" json:"amountPaid"`
	PaymentDate   string  `gorm:"type:date;not null" json:"paymentDate"`

	ServicePackage ServicePackage `gorm:"belongsTo;foreignkey:RecordNumber" json:"-"`
}
