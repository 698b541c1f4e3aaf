package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// globalLogger stays a no-op until Init so packages can log from tests.
var globalLogger = zap.NewNop().Sugar()

// Init initializes the global logger with JSON output
func Init(appEnv string) error {
	var config zap.Config

	if appEnv == "production" {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	// Ensure output is JSON
	config.Encoding = "json"

	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	globalLogger = logger.Sugar()
	return nil
}

// SetLogger replaces the global logger, mostly for tests that assert on output.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	globalLogger = l.Sugar()
}

// GetLogger returns the global SugaredLogger for structured logging
func GetLogger() *zap.SugaredLogger {
	return globalLogger
}

// Close flushes any buffered logs
func Close() error {
	return globalLogger.Sync()
}

func Info(message string, fields ...interface{}) {
	globalLogger.Infow(message, fields...)
}

func Debug(message string, fields ...interface{}) {
	globalLogger.Debugw(message, fields...)
}

func Warn(message string, fields ...interface{}) {
	globalLogger.Warnw(message, fields...)
}

func Error(message string, fields ...interface{}) {
	globalLogger.Errorw(message, fields...)
}

// Fatal logs a fatal message and exits
func Fatal(message string, fields ...interface{}) {
	globalLogger.Fatalw(message, fields...)
	os.Exit(1)
}

// WithRequest creates a logger with request context fields
func WithRequest(requestID, endpoint string) *zap.SugaredLogger {
	return globalLogger.With(
		"request_id", requestID,
		"endpoint", endpoint,
	)
}
