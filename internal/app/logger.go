package app

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	logFileMaxSizeMB  = 50
	logFileMaxBackups = 5
	logFileMaxAgeDays = 30
)

// initLogger создает и настраивает логгер.
// Если задан logFile, записи дублируются в файл с ротацией.
func initLogger(logLevel, logFile string) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	level := zapcore.InfoLevel
	if logLevel == "production" {
		logger, err = zap.NewProduction()
	} else {
		if parsed, perr := zapcore.ParseLevel(logLevel); perr == nil {
			level = parsed
		}
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		logger, err = cfg.Build()
	}

	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	if logFile == "" {
		return logger, nil
	}

	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    logFileMaxSizeMB,
			MaxBackups: logFileMaxBackups,
			MaxAge:     logFileMaxAgeDays,
			Compress:   true,
		}),
		level,
	)

	return logger.WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, fileCore)
	})), nil
}
