package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	Output     io.Writer
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var output io.Writer = out
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// FileConfig sends logs to a rotating file.
type FileConfig struct {
	Enabled    bool
	LogDir     string
	FileName   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
	// WriteToStderr keeps a copy of every line on stderr.
	WriteToStderr bool
}

// NewWithFile builds a logger writing to the rotating file described by fc.
// The returned cleanup closes the file. With fc disabled it behaves like New.
func NewWithFile(cfg Config, fc FileConfig) (zerolog.Logger, func(), error) {
	if !fc.Enabled {
		return New(cfg), func() {}, nil
	}

	name := fc.FileName
	if name == "" {
		name = "uibridge.log"
	}
	rotator, err := NewRotator(fc.LogDir, name, fc.MaxSizeMB, fc.MaxBackups, fc.MaxAgeDays, fc.Compress)
	if err != nil {
		return New(cfg), func() {}, err
	}

	var file io.Writer = rotator
	if cfg.Format == "console" {
		file = zerolog.ConsoleWriter{Out: rotator, TimeFormat: cfg.TimeFormat, NoColor: true}
	}
	out := file
	if fc.WriteToStderr {
		var stderr io.Writer = os.Stderr
		if cfg.Format == "console" {
			stderr = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: cfg.TimeFormat}
		}
		out = zerolog.MultiLevelWriter(file, stderr)
	}

	logger := zerolog.New(out).Level(cfg.Level).With().Timestamp().Logger()
	cleanup := func() {
		if err := rotator.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", err)
		}
	}
	return logger, cleanup, nil
}

// NewFromConfigValues builds a logger from the string values found in the
// config file. Unknown values fall back to the defaults.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	switch strings.ToLower(format) {
	case "json":
		cfg.Format = "json"
	case "console", "text":
		cfg.Format = "console"
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// UIBRIDGE_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// UIBRIDGE_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("UIBRIDGE_LOG_LEVEL"), os.Getenv("UIBRIDGE_LOG_FORMAT"))
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
