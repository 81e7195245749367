package main

import (
	"flag"

	"undangan.link/configs/configsdatabase"
	"undangan.link/configs/configslog"
	"undangan.link/database"
	"undangan.link/database/datafix"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()
	migrateFlag := flag.Bool("migrate", false, "Run schema migrations")
	seedFlag := flag.Bool("seed", false, "Run seeders")
	fixDataFlag := flag.Bool("fix-wedding-data", false, "Upgrade legacy wedding documents to the current schema")
	flag.Parse()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	db := configsdatabase.GetDB()

	configslog.SLog.Info("Database maintenance starting...")
	database.Initialize(db, *migrateFlag, *seedFlag)

	if *fixDataFlag {
		result, err := datafix.Run(db)
		if err != nil {
			configslog.SLog.Errorf("Wedding document upgrade finished with errors: %v", err)
		}
		configslog.SLog.Infof("Wedding document upgrade: %d scanned, %d migrated, %d failed",
			result.Scanned, result.Migrated, result.Failed)
	}

	configslog.SLog.Info("Database maintenance finished.")
}
