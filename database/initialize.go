package database

import (
	"undangan.link/configs/configslog"
	"undangan.link/database/migrations"
	"undangan.link/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize runs schema migrations and seeders inside one transaction.
// The document upgrade batch is intentionally not part of this: it commits
// per row so partial progress survives a failure (see database/datafix).
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Neither migrate nor seed was requested, nothing to do.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Database transaction could not be started", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Database initialization failed (panic)", zap.Any("panic_info", r))
		} else if err := tx.Error; err != nil && err != gorm.ErrInvalidTransaction {
			configslog.SLog.Warn("Rolling back after initialization error.", zap.Error(err))
			rbErr := tx.Rollback().Error
			if rbErr != nil && rbErr != gorm.ErrInvalidTransaction {
				configslog.Log.Error("Additional error during rollback", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Database initialization starting...")

	if migrate {
		configslog.SLog.Info("Running migrations...")
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migration failed", zap.Error(err))
			return
		}
		configslog.SLog.Info("Migrations finished.")
	}

	if seed {
		configslog.SLog.Info("Running seeders...")
		if err := CheckAndRunSeeders(tx); err != nil {
			configslog.Log.Error("Seeding failed", zap.Error(err))
			return
		}
		configslog.SLog.Info("Seeders finished.")
	}

	configslog.SLog.Info("Committing...")
	if err := tx.Commit().Error; err != nil {
		tx.Error = err
		configslog.Log.Error("Commit failed", zap.Error(err))
		return
	}

	configslog.SLog.Info("Database initialization completed successfully")
}

// RunMigrationsInOrder migrates the tables respecting their FK dependencies.
func RunMigrationsInOrder(db *gorm.DB) error {
	steps := []struct {
		name string
		run  func(*gorm.DB) error
	}{
		{"users", migrations.MigrateUsersTable},
		{"templates", migrations.MigrateTemplatesTable},
		{"weddings", migrations.MigrateWeddingsTable},
		{"rsvps", migrations.MigrateRSVPTable},
		{"orders", migrations.MigrateOrdersTable},
	}
	for _, step := range steps {
		configslog.SLog.Infof(" -> Migrating %s...", step.name)
		if err := step.run(db); err != nil {
			configslog.Log.Error("Migration step failed", zap.String("table", step.name), zap.Error(err))
			return err
		}
	}
	configslog.SLog.Info("All migrations ran successfully.")
	return nil
}

// CheckAndRunSeeders runs every idempotent seeder.
func CheckAndRunSeeders(db *gorm.DB) error {
	configslog.SLog.Info(" -> Seeding system user...")
	if err := seeders.SeedSystemUser(db); err != nil {
		configslog.Log.Error("System user seeding failed", zap.Error(err))
		return err
	}

	configslog.SLog.Info(" -> Seeding template catalog...")
	if err := seeders.SeedTemplates(db); err != nil {
		configslog.Log.Error("Template catalog seeding failed", zap.Error(err))
		return err
	}

	configslog.SLog.Info("All seeders checked/ran successfully.")
	return nil
}
