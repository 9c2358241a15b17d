// Package config loads, validates and watches the uibridge configuration file.
package config

import "time"

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Config represents the complete configuration for uibridge.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	// Bridge tunes the session bridge itself.
	Bridge BridgeConfig `mapstructure:"bridge" toml:"bridge" json:"bridge"`
	// Journal controls persistence of delivered events.
	Journal JournalConfig `mapstructure:"journal" toml:"journal" json:"journal"`
	Metrics MetricsConfig `mapstructure:"metrics" toml:"metrics" json:"metrics"`
	// TUI configures the terminal window opened by `uibridge run`.
	TUI    TUIConfig    `mapstructure:"tui" toml:"tui" json:"tui"`
	Script ScriptConfig `mapstructure:"script" toml:"script" json:"script"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// LogDir receives the rotating log file while a window owns the terminal.
	// Empty means the XDG state directory.
	LogDir     string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days" jsonschema:"minimum=0"`
	Compress   bool   `mapstructure:"compress" toml:"compress" json:"compress"`
}

// BridgeConfig holds session bridge settings.
type BridgeConfig struct {
	// EventLogLimit caps the in-memory event log of each session. 0 keeps everything.
	EventLogLimit int `mapstructure:"event_log_limit" toml:"event_log_limit" json:"event_log_limit" jsonschema:"minimum=0"`
	// DrainTimeout bounds how long shutdown waits for sessions to drain.
	DrainTimeout time.Duration `mapstructure:"drain_timeout" toml:"drain_timeout" json:"drain_timeout"`
}

// JournalConfig controls the sqlite event journal.
type JournalConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	// Path of the sqlite database. Empty means the XDG data directory.
	Path string `mapstructure:"path" toml:"path" json:"path"`
	// RetentionDays drops journal rows older than this at startup. 0 disables pruning.
	RetentionDays int `mapstructure:"retention_days" toml:"retention_days" json:"retention_days" jsonschema:"minimum=0"`
}

// MetricsConfig controls the prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	Addr    string `mapstructure:"addr" toml:"addr" json:"addr"`
}

// TUIConfig configures the terminal window.
type TUIConfig struct {
	Title string `mapstructure:"title" toml:"title" json:"title"`
	// Bindings maps a key (as reported by bubbletea, e.g. "+", "ctrl+s") to
	// the event name sent when it is pressed. Keys are case-insensitive.
	Bindings map[string]string `mapstructure:"bindings" toml:"bindings" json:"bindings"`
}

// ScriptConfig points at an optional JavaScript file that registers handlers.
type ScriptConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path"`
}
