package configsdatabase

import (
	"fmt"
	"sync"
	"time"

	"undangan.link/configs/configslog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// dbConfig is parsed directly from the environment so this package stays
// importable from configs without a cycle.
type dbConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"undangan"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
}

var (
	db     *gorm.DB
	dbOnce sync.Once
)

// InitDB opens the Postgres connection and configures the pool.
// Fatal on failure; the application cannot run without its store.
func InitDB() {
	dbOnce.Do(func() {
		_ = godotenv.Load()
		var c dbConfig
		if err := envconfig.Process("", &c); err != nil {
			configslog.Log.Fatal("database configuration could not be parsed", zap.Error(err))
		}

		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)

		gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
			TranslateError: true,
		})
		if err != nil {
			configslog.Log.Fatal("database connection failed", zap.Error(err))
		}

		sqlDB, err := gormDB.DB()
		if err != nil {
			configslog.Log.Fatal("database handle could not be obtained", zap.Error(err))
		}
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)

		db = gormDB
		configslog.SLog.Infof("Database connection established: %s@%s:%s/%s", c.User, c.Host, c.Port, c.Name)
	})
}

// GetDB returns the shared connection, initialising it lazily.
func GetDB() *gorm.DB {
	if db == nil {
		InitDB()
	}
	return db
}

// CloseDB closes the underlying connection pool.
func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		configslog.Log.Error("database handle could not be obtained on close", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		configslog.Log.Error("database connection could not be closed", zap.Error(err))
	}
}
