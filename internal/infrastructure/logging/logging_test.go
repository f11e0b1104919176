package logging

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"scriptherder.io/cli/internal/application/appconfig"
	"scriptherder.io/cli/internal/core/config"
)

// TestParseLevel tests the level-name mapping
func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   zapcore.Level
		enabled bool
	}{
		{name: "error", level: zapcore.ErrorLevel, enabled: true},
		{name: "warn", level: zapcore.WarnLevel, enabled: true},
		{name: "info", level: zapcore.InfoLevel, enabled: true},
		{name: "debug", level: zapcore.DebugLevel, enabled: true},
		{name: "trace", level: zapcore.DebugLevel, enabled: true},
		{name: "INFO", level: zapcore.InfoLevel, enabled: true},
		{name: "off", enabled: false},
		{name: "bogus", level: zapcore.ErrorLevel, enabled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, enabled := ParseLevel(tt.name)
			assert.Equal(t, tt.enabled, enabled)
			if tt.enabled {
				assert.Equal(t, tt.level, level)
			}
		})
	}
}

// TestFromConfig tests logger construction from the resolved level key
func TestFromConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	machinePath := filepath.Join(t.TempDir(), ".config-sh.json")

	cfg, err := appconfig.Bootstrap(machinePath)
	require.NoError(t, err)

	logger, err := FromConfig(cfg)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel),
		"an unset level key disables logging")

	appconfig.SetValue(cfg, config.KeyLogLevel, "info")
	logger, err = FromConfig(cfg)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}
