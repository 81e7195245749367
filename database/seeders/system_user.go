package seeders

import (
	"errors"
	"os"

	"undangan.link/configs/configslog"
	"undangan.link/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	defaultSystemEmail    = "admin@undangan.link"
	defaultSystemPassword = "change-me-now"
)

// SeedSystemUser ensures the administrator account exists. Credentials come
// from SYSTEM_USER_EMAIL / SYSTEM_USER_PASSWORD with development fallbacks.
func SeedSystemUser(db *gorm.DB) error {
	email := os.Getenv("SYSTEM_USER_EMAIL")
	if email == "" {
		email = defaultSystemEmail
	}
	password := os.Getenv("SYSTEM_USER_PASSWORD")
	if password == "" {
		password = defaultSystemPassword
		configslog.SLog.Warn("SYSTEM_USER_PASSWORD is not set, using the development default.")
	}

	var existing models.User
	result := db.Where("email = ?", email).First(&existing)
	if result.Error == nil {
		configslog.SLog.Debugf("System user '%s' already exists, skipping.", email)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		configslog.Log.Error("System user lookup failed", zap.Error(result.Error))
		return result.Error
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := models.User{
		Name:         "System",
		Email:        email,
		PasswordHash: string(hash),
		IsSystem:     true,
		IsActive:     true,
		Plan:         models.PlanGold,
	}
	if err := db.Create(&user).Error; err != nil {
		configslog.Log.Error("System user could not be created", zap.Error(err))
		return err
	}
	configslog.SLog.Infof("System user created: %s (ID %d)", email, user.ID)
	return nil
}
