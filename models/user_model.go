package models

import (
	"time"
)

type User struct {
	UserID   uint   `gorm:"primaryKey;autoIncrement" json:"userId"`
	Username string `gorm:"size:50;not null;unique" json:"username"`
	Password string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}
