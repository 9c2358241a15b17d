package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
		{name: "zero log size", mutate: func(c *Config) { c.Logging.MaxSizeMB = 0 }, wantErr: "logging.max_size_mb"},
		{name: "negative backups", mutate: func(c *Config) { c.Logging.MaxBackups = -1 }, wantErr: "logging.max_backups"},
		{name: "negative log limit", mutate: func(c *Config) { c.Bridge.EventLogLimit = -1 }, wantErr: "bridge.event_log_limit"},
		{name: "zero drain timeout", mutate: func(c *Config) { c.Bridge.DrainTimeout = 0 }, wantErr: "bridge.drain_timeout"},
		{name: "negative retention", mutate: func(c *Config) { c.Journal.RetentionDays = -3 }, wantErr: "journal.retention_days"},
		{name: "bad metrics addr", mutate: func(c *Config) {
			c.Metrics.Enabled = true
			c.Metrics.Addr = "nowhere"
		}, wantErr: "metrics.addr"},
		{name: "reserved key", mutate: func(c *Config) { c.TUI.Bindings["q"] = "counter.reset" }, wantErr: `key "q" is reserved`},
		{name: "disabled metrics ignore addr", mutate: func(c *Config) { c.Metrics.Addr = "nowhere" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfig_AggregatesErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "loud"
	cfg.Bridge.EventLogLimit = -1

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
	assert.Contains(t, err.Error(), "bridge.event_log_limit")
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = " WARN "
	cfg.Logging.Format = "Text"
	cfg.TUI.Title = ""
	cfg.TUI.Bindings = map[string]string{"A": " counter.increment ", "b": ""}

	normalizeConfig(cfg)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, defaultTitle, cfg.TUI.Title)
	assert.Equal(t, map[string]string{"a": "counter.increment"}, cfg.TUI.Bindings)
}

func TestNormalizeConfig_EmptyBindingsUseDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TUI.Bindings = nil

	normalizeConfig(cfg)

	assert.Equal(t, DefaultBindings(), cfg.TUI.Bindings)
}
