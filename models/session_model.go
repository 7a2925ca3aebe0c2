package models

import (
	"time"
)

// Session is a server-side login record keyed by the token carried in
// the client's cookie. Expired rows are purged by a background job and
// dropped on lookup.
type Session struct {
	Token     string    `gorm:"size:64;primaryKey" json:"-"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Username  string    `gorm:"size:50;not null" json:"username"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expiresAt"`

	User User `gorm:"belongsTo;foreignkey:UserID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}
