package migrations

import (
	"undangan.link/configs/configslog"
	"undangan.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateWeddingsTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating weddings table...")
	if err := db.AutoMigrate(&models.Wedding{}); err != nil {
		configslog.Log.Error("Failed to migrate weddings table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Weddings table migrated successfully")
	return nil
}
