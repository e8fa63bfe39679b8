package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLogSettings(t *testing.T) {
	s := DefaultLogSettings()
	assert.Equal(t, slog.LevelWarn, s.Level)
	assert.Equal(t, "text", s.Format)
}

func TestLoadLogSettingsFromEnvironment(t *testing.T) {
	t.Setenv("BRADAR_LOG_LEVEL", "debug")
	t.Setenv("BRADAR_LOG_FORMAT", "json")

	s := LoadLogSettingsFromEnvironment()
	assert.Equal(t, slog.LevelDebug, s.Level)
	assert.Equal(t, "json", s.Format)
}

func TestParseLogLevelInvalid(t *testing.T) {
	_, err := parseLogLevel("not-a-level")
	assert.Error(t, err)
}
