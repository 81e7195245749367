package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the structured logger, SLog the sugared one. Both point at the same
// zap core and are initialised once from InitLogger.
var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// InitLogger configures the global loggers. APP_ENV=production switches to
// JSON output; anything else gets the human-readable console encoder.
func InitLogger() {
	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		panic("logger could not be initialised: " + err.Error())
	}
	Log = logger
	SLog = logger.Sugar()
}

// SyncLogger flushes buffered log entries. Deferred from main.
func SyncLogger() {
	if Log != nil {
		_ = Log.Sync()
	}
}
