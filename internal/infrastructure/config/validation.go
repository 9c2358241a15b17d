package config

import (
	"fmt"
	"maps"
	"net"
	"slices"
	"strings"
)

// validateConfig collects every problem before failing.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateBridge(config)...)
	validationErrors = append(validationErrors, validateJournal(config)...)
	validationErrors = append(validationErrors, validateMetrics(config)...)
	validationErrors = append(validationErrors, validateBindings(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, disabled (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	if config.Logging.MaxSizeMB <= 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be positive")
	}
	if config.Logging.MaxBackups < 0 || config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_backups and logging.max_age_days must be non-negative")
	}
	return validationErrors
}

func validateBridge(config *Config) []string {
	var validationErrors []string
	if config.Bridge.EventLogLimit < 0 {
		validationErrors = append(validationErrors, "bridge.event_log_limit must be non-negative")
	}
	if config.Bridge.DrainTimeout <= 0 {
		validationErrors = append(validationErrors, "bridge.drain_timeout must be positive")
	}
	return validationErrors
}

func validateJournal(config *Config) []string {
	if config.Journal.RetentionDays < 0 {
		return []string{"journal.retention_days must be non-negative"}
	}
	return nil
}

func validateMetrics(config *Config) []string {
	if !config.Metrics.Enabled {
		return nil
	}
	if _, _, err := net.SplitHostPort(config.Metrics.Addr); err != nil {
		return []string{fmt.Sprintf("metrics.addr must be host:port: %v", err)}
	}
	return nil
}

func validateBindings(config *Config) []string {
	var validationErrors []string
	for _, key := range slices.Sorted(maps.Keys(config.TUI.Bindings)) {
		switch key {
		case "", "q", "ctrl+c", "?":
			validationErrors = append(validationErrors,
				fmt.Sprintf("tui.bindings: key %q is reserved", key))
		}
	}
	return validationErrors
}
