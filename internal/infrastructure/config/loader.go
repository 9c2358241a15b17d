package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	configFile     string
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
}

// NewManager creates a new configuration manager. An empty path means the
// XDG config file, which is created with defaults on first load.
func NewManager(path string) (*Manager, error) {
	v := viper.New()
	v.SetConfigType("toml")

	configFile := path
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config file: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
	}
	v.SetConfigFile(configFile)

	// UIBRIDGE_BRIDGE_EVENT_LOG_LIMIT, UIBRIDGE_METRICS_ADDR, ...
	v.SetEnvPrefix("UIBRIDGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "UIBRIDGE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind UIBRIDGE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "UIBRIDGE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind UIBRIDGE_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:      v,
		configFile: configFile,
		callbacks:  make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensurePaths(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to read config file %s: %w", m.configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configFile,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf(
			"failed to read newly created config file: %w\nThe config file was created but couldn't be read. Please check the file format",
			rereadErr,
		)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFile,
			err,
		)
	}
	return config, nil
}

func ensurePaths(config *Config) error {
	if config.Journal.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get journal path: %w", err)
		}
		config.Journal.Path = dbPath
	}
	if config.Logging.LogDir == "" {
		logDir, err := GetLogDir()
		if err != nil {
			return fmt.Errorf("failed to get log directory: %w", err)
		}
		config.Logging.LogDir = logDir
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "text" {
		config.Logging.Format = "console"
	}
	config.TUI.Title = strings.TrimSpace(config.TUI.Title)
	if config.TUI.Title == "" {
		config.TUI.Title = defaultTitle
	}

	if len(config.TUI.Bindings) == 0 {
		config.TUI.Bindings = DefaultBindings()
		return
	}
	bindings := make(map[string]string, len(config.TUI.Bindings))
	for key, event := range config.TUI.Bindings {
		event = strings.TrimSpace(event)
		if event == "" {
			continue
		}
		bindings[strings.ToLower(key)] = event
	}
	config.TUI.Bindings = bindings
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.TUI.Bindings = make(map[string]string, len(m.config.TUI.Bindings))
	for k, v := range m.config.TUI.Bindings {
		configCopy.TUI.Bindings[k] = v
	}
	return &configCopy
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := WriteConfigOrdered(cfg, m.configFile); err != nil {
		return err
	}
	if m.watching {
		m.skipNextReload = true
	}

	saved := *cfg
	m.config = &saved
	return nil
}

// ConfigFile returns the path of the configuration file.
func (m *Manager) ConfigFile() string {
	return m.configFile
}

// createDefaultConfig writes the defaults and the matching JSON schema.
func (m *Manager) createDefaultConfig() error {
	if err := os.MkdirAll(filepath.Dir(m.configFile), dirPerm); err != nil {
		return err
	}
	if err := WriteConfigOrdered(DefaultConfig(), m.configFile); err != nil {
		return err
	}
	if err := WriteSchemaFile(filepath.Join(filepath.Dir(m.configFile), "config.schema.json")); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s\n", m.configFile)
	return nil
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)

	m.viper.SetDefault("bridge.event_log_limit", defaults.Bridge.EventLogLimit)
	m.viper.SetDefault("bridge.drain_timeout", defaults.Bridge.DrainTimeout)

	m.viper.SetDefault("journal.enabled", defaults.Journal.Enabled)
	m.viper.SetDefault("journal.retention_days", defaults.Journal.RetentionDays)

	m.viper.SetDefault("metrics.enabled", defaults.Metrics.Enabled)
	m.viper.SetDefault("metrics.addr", defaults.Metrics.Addr)

	m.viper.SetDefault("tui.title", defaults.TUI.Title)
}
