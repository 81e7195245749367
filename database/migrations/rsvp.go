package migrations

import (
	"undangan.link/configs/configslog"
	"undangan.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateRSVPTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating rsvps table...")
	if err := db.AutoMigrate(&models.RSVP{}); err != nil {
		configslog.Log.Error("Failed to migrate rsvps table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("RSVPs table migrated successfully")
	return nil
}
