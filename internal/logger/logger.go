// Package logger provides structured logging with zap.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a zap.Logger for env. Production logs JSON at info, development
// logs console output at debug and anything else only reports warnings.
func New(env string) *zap.Logger {
	switch env {
	case "production":
		logger, _ := zap.NewProduction()
		return logger
	case "development":
		logger, _ := zap.NewDevelopment()
		return logger
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
