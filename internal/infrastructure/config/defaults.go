package config

import "time"

const (
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultEventLogLimit = 1000
	defaultDrainTimeout  = 5 * time.Second
	defaultMetricsAddr   = "127.0.0.1:9464"
	defaultTitle         = "uibridge"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
		Bridge: BridgeConfig{
			EventLogLimit: defaultEventLogLimit,
			DrainTimeout:  defaultDrainTimeout,
		},
		Journal: JournalConfig{
			Enabled:       false,
			RetentionDays: 30,
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Addr:    defaultMetricsAddr,
		},
		TUI: TUIConfig{
			Title:    defaultTitle,
			Bindings: DefaultBindings(),
		},
	}
}

// DefaultBindings returns the key bindings of the counter window.
func DefaultBindings() map[string]string {
	return map[string]string{
		"+": "counter.increment",
		"-": "counter.decrement",
		"r": "counter.reset",
		"s": "save.clicked",
	}
}
