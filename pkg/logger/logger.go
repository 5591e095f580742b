package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New Логгер для окружения: prod пишет JSON, остальные окружения пишут консольный формат
func New(env, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewDevelopmentConfig()
	if env == "prod" || env == "production" {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
