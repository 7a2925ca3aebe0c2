package services

import (
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
	config "github.com/smartpark/cwsms/configs"
	"github.com/smartpark/cwsms/models"
	"gorm.io/gorm"
)

const defaultSessionTTL = 24 * time.Hour

func sessionTTL() time.Duration {
	if raw := config.Config("SESSION_TTL_HOURS"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
		log.Printf("Invalid SESSION_TTL_HOURS %q, using default", raw)
	}
	return defaultSessionTTL
}

func CreateSession(db *gorm.DB, user models.User) (*models.Session, error) {
	session := models.Session{
		Token:     uuid.NewString(),
		UserID:    user.UserID,
		Username:  user.Username,
		ExpiresAt: time.Now().Add(sessionTTL()),
	}
	if err := db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// LookupSession resolves a token to its live session. An expired row is
// deleted on sight and reported as gorm.ErrRecordNotFound.
func LookupSession(db *gorm.DB, token string) (*models.Session, error) {
	var session models.Session
	if err := db.Where("token = ?", token).First(&session).Error; err != nil {
		return nil, err
	}

	if session.ExpiresAt.Before(time.Now()) {
		db.Where("token = ?", token).Delete(&models.Session{})
		return nil, gorm.ErrRecordNotFound
	}

	return &session, nil
}

func DestroySession(db *gorm.DB, token string) error {
	return db.Where("token = ?", token).Delete(&models.Session{}).Error
}

func PurgeExpiredSessions(db *gorm.DB) (int64, error) {
	result := db.Where("expires_at < ?", time.Now()).Delete(&models.Session{})
	return result.RowsAffected, result.Error
}
