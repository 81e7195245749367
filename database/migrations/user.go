package migrations

import (
	"undangan.link/configs/configslog"
	"undangan.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateUsersTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating users table...")
	if err := db.AutoMigrate(&models.User{}); err != nil {
		configslog.Log.Error("Failed to migrate users table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Users table migrated successfully")
	return nil
}
