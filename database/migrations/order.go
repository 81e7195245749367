package migrations

import (
	"undangan.link/configs/configslog"
	"undangan.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateOrdersTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating orders table...")
	if err := db.AutoMigrate(&models.Order{}); err != nil {
		configslog.Log.Error("Failed to migrate orders table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Orders table migrated successfully")
	return nil
}
