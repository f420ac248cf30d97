package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewAppLogger builds a console logger for APP_ENV=dev and a JSON logger
// otherwise.
func NewAppLogger() (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if env := os.Getenv("APP_ENV"); env == "" || env == "dev" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}

	if os.Getenv("DEBUG") == "true" {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	return l.Sugar(), nil
}

func Sync(l *zap.SugaredLogger) {
	_ = l.Sync()
}
