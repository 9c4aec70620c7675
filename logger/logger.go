// Package logger holds the process wide structured logger.
//
// The CLI writes its user facing output on stdout, diagnostics go through
// this package to stderr.
package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
)

const (
	logEnvKey = "CASHBOOK_LOG"
	devLogEnv = "dev"
)

var logger *zap.Logger

func init() {
	if err := Setup(os.Getenv(logEnvKey) == devLogEnv); err != nil {
		log.Fatal("logger init", err)
	}
}

// Setup replaces the package logger.
//
// In verbose mode it uses zap's development configuration (debug level),
// otherwise only warnings and errors are printed, without timestamps.
func Setup(verbose bool) error {
	var cfg zap.Config
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		cfg.Encoding = "console"
		cfg.EncoderConfig.TimeKey = ""
		cfg.EncoderConfig.CallerKey = ""
		cfg.Sampling = nil
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// Replace swaps the package logger with l and returns a function restoring the previous one.
func Replace(l *zap.Logger) (restore func()) {
	prev := logger
	logger = l
	return func() { logger = prev }
}

func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	logger.Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
}

// Sync flushes buffered entries, call it before the process exits.
func Sync() error {
	return logger.Sync()
}
