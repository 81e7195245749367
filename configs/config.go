package configs

import (
	"sync"

	"undangan.link/configs/configsdatabase"
	"undangan.link/configs/configslog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gorm.io/gorm"
)

// Config holds every environment-driven setting of the application.
// Values are read once from the process environment (optionally preloaded
// from a .env file) and kept immutable afterwards.
type Config struct {
	AppEnv     string `envconfig:"APP_ENV" default:"development"`
	AppPort    string `envconfig:"APP_PORT" default:"3000"`
	AppBaseURL string `envconfig:"APP_BASE_URL" default:"http://localhost:3000"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName     string `envconfig:"DB_NAME" default:"undangan"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	StripeSecretKey     string `envconfig:"STRIPE_SECRET_KEY"`
	StripeWebhookSecret string `envconfig:"STRIPE_WEBHOOK_SECRET"`
}

var (
	cfg     Config
	cfgOnce sync.Once
)

// Get returns the process-wide configuration, loading it on first use.
// A missing .env file is not an error; the real environment wins anyway.
func Get() Config {
	cfgOnce.Do(func() {
		_ = godotenv.Load()
		if err := envconfig.Process("", &cfg); err != nil {
			configslog.SLog.Fatalf("environment configuration could not be parsed: %v", err)
		}
	})
	return cfg
}

// GetDB exposes the shared GORM handle. Services import configs, not
// configsdatabase, so the connection wiring stays in one place.
func GetDB() *gorm.DB {
	return configsdatabase.GetDB()
}
