// Package logging builds the process logger from resolved configuration.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"scriptherder.io/cli/internal/application/appconfig"
	"scriptherder.io/cli/internal/core/config"
)

// New creates a console logger at the given level.
func New(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Encoding = "console"
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// FromConfig creates a logger whose level comes from the core.log.level key.
// An unset key disables logging entirely.
func FromConfig(cfg *appconfig.AppConfig) (*zap.Logger, error) {
	name, ok := appconfig.Value[string](cfg, config.KeyLogLevel)
	if !ok {
		return zap.NewNop(), nil
	}
	level, enabled := ParseLevel(name)
	if !enabled {
		return zap.NewNop(), nil
	}
	return New(level)
}

// ParseLevel maps a configured level name to a zap level. Unknown names fall
// back to error; "off" disables logging. zap has no trace level, so trace
// maps to debug.
func ParseLevel(name string) (zapcore.Level, bool) {
	switch strings.ToLower(name) {
	case "error":
		return zapcore.ErrorLevel, true
	case "warn":
		return zapcore.WarnLevel, true
	case "info":
		return zapcore.InfoLevel, true
	case "debug", "trace":
		return zapcore.DebugLevel, true
	case "off":
		return zapcore.InvalidLevel, false
	default:
		return zapcore.ErrorLevel, true
	}
}
