package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"log/slog"
)

// LogSettings controls the structured logger, mirroring the teacher's
// Settings.ConfigureLogger split (level + format + optional file target)
// but driven by BRADAR_LOG_* rather than STACK_ANALYZER_LOG_*.
type LogSettings struct {
	Level  slog.Level
	Format string // "text" or "json"
	File   string
}

// DefaultLogSettings is quiet unless asked: warnings and errors only, as
// text.
func DefaultLogSettings() LogSettings {
	return LogSettings{Level: slog.LevelWarn, Format: "text"}
}

// LoadLogSettingsFromEnvironment overlays BRADAR_LOG_* variables.
func LoadLogSettingsFromEnvironment() LogSettings {
	s := DefaultLogSettings()
	if lvl := os.Getenv("BRADAR_LOG_LEVEL"); lvl != "" {
		if parsed, err := parseLogLevel(lvl); err == nil {
			s.Level = parsed
		}
	}
	if format := os.Getenv("BRADAR_LOG_FORMAT"); format != "" {
		s.Format = format
	}
	if file := os.Getenv("BRADAR_LOG_FILE"); file != "" {
		s.File = file
	}
	return s
}

// ApplyLogLevelOverride parses level and, if valid, returns s with Level
// replaced; an invalid level leaves s unchanged, matching the teacher's
// "bad --log-level silently keeps the prior setting" behavior.
func ApplyLogLevelOverride(s LogSettings, level string) LogSettings {
	if parsed, err := parseLogLevel(level); err == nil {
		s.Level = parsed
	}
	return s
}

func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level: %s", level)
	}
}

// Configure builds the process-wide logger from s.
func (s LogSettings) Configure() *slog.Logger {
	var output io.Writer = os.Stderr
	if s.File != "" {
		if f, err := os.OpenFile(s.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
			output = f
		} else {
			fmt.Fprintf(os.Stderr, "warning: cannot open log file %s: %v\n", s.File, err)
		}
	}

	opts := &slog.HandlerOptions{Level: s.Level}
	var handler slog.Handler
	if strings.ToLower(s.Format) == "json" {
		handler = slog.NewJSONHandler(output, opts)
	} else {
		handler = slog.NewTextHandler(output, opts)
	}
	return slog.New(handler)
}
