// Package logging provides the toolkit's structured logger.
//
// Logging is silent unless a level is configured, either explicitly through
// Initialize or through the WIDGETS_LOG_LEVEL environment variable. The
// toolkit only logs diagnostics (focus and popup transitions at debug level,
// glyph rasterisation failures as warnings); nothing is ever shown to the
// end user.
//
//	if err := logging.Initialize("debug"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
package logging

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// Valid values: "debug", "info", "warn", "error".
const LogLevelEnvVar = "WIDGETS_LOG_LEVEL"

var (
	mu     sync.RWMutex
	logger *zap.Logger
)

// Initialize creates the package logger with the given level. An empty level
// falls back to WIDGETS_LOG_LEVEL; if that is empty too, logging stays silent.
func Initialize(level string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if level == "" {
		Set(zap.NewNop())
		return nil
	}

	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	Set(built.Named("widgets"))
	return nil
}

// Set replaces the package logger. A nil logger installs a nop logger.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	mu.Lock()
	logger = l
	mu.Unlock()
}

// L returns the package logger; a nop logger until Initialize or Set is called.
func L() *zap.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// Sync flushes buffered log entries.
func Sync() {
	_ = L().Sync()
}
