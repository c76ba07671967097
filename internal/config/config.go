// Package config provides configuration management for the gtkbridge demo with Viper
// integration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/bnema/gtkbridge/internal/logging"
)

// File permission constants
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// EnvPrefix prefixes every environment override, e.g. GTKBRIDGE_WINDOW_TITLE.
const EnvPrefix = "GTKBRIDGE"

// Config represents the complete demo configuration.
type Config struct {
	Window       WindowConfig  `mapstructure:"window" toml:"window" json:"window"`
	Widgets      WidgetsConfig `mapstructure:"widgets" toml:"widgets" json:"widgets"`
	Logging      LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
	ThreadChecks bool          `mapstructure:"thread_checks" toml:"thread_checks" json:"thread_checks" jsonschema:"description=Panic when an object is touched off the GTK thread"`
}

// WindowConfig holds the demo toplevel's settings.
type WindowConfig struct {
	Title       string `mapstructure:"title" toml:"title" json:"title"`
	Width       int    `mapstructure:"width" toml:"width" json:"width" jsonschema:"minimum=1"`
	Height      int    `mapstructure:"height" toml:"height" json:"height" jsonschema:"minimum=1"`
	BorderWidth int    `mapstructure:"border_width" toml:"border_width" json:"border_width" jsonschema:"minimum=0"`
}

// WidgetsConfig holds the labels and texts shown by the scenarios.
type WidgetsConfig struct {
	ButtonLabel     string   `mapstructure:"button_label" toml:"button_label" json:"button_label"`
	CheckLabel      string   `mapstructure:"check_label" toml:"check_label" json:"check_label"`
	DialogText      string   `mapstructure:"dialog_text" toml:"dialog_text" json:"dialog_text"`
	ShortcutFolders []string `mapstructure:"shortcut_folders" toml:"shortcut_folders" json:"shortcut_folders"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	dir       string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	log       zerolog.Logger
}

// NewManager creates a configuration manager reading from the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	return NewManagerIn(configDir), nil
}

// NewManagerIn creates a configuration manager reading config.{toml,yaml,json} from dir.
func NewManagerIn(dir string) *Manager {
	v := viper.New()

	// Will find config.toml, config.yaml, config.json, etc.
	v.SetConfigName("config")
	v.AddConfigPath(dir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Manager{
		viper:     v,
		dir:       dir,
		callbacks: make([]func(*Config), 0),
		log:       logging.NewFromEnv(),
	}
}

// SetLogger replaces the logger used to report watch and reload events.
func (m *Manager) SetLogger(l zerolog.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.log = l
}

// Load loads the configuration from file and environment variables. A missing file
// is not an error; defaults apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.Logging.Level = strings.ToLower(config.Logging.Level)
	if err := Validate(config); err != nil {
		return nil, err
	}
	return config, nil
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	configCopy.Widgets.ShortcutFolders = append([]string(nil), m.config.Widgets.ShortcutFolders...)
	return &configCopy
}

// Watch starts watching the config file for changes and reloads automatically.
// Callbacks run on the watcher goroutine; GTK work must be handed to the main loop.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil // Already watching
	}
	if m.viper.ConfigFileUsed() == "" {
		return ErrNoConfigFile
	}

	m.viper.OnConfigChange(func(ev fsnotify.Event) {
		m.mu.RLock()
		log := m.log
		m.mu.RUnlock()
		log.Debug().Str("op", ev.Op.String()).Str("file", ev.Name).Msg("config change detected")

		if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
			return
		}
		if err := m.reload(); err != nil {
			log.Warn().Err(err).Msg("failed to reload config")
			return
		}

		// Notify callbacks
		m.mu.RLock()
		config := m.config
		callbacks := make([]func(*Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.RUnlock()

		for _, callback := range callbacks {
			callback(config)
		}
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

func (m *Manager) reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("window.title", defaults.Window.Title)
	m.viper.SetDefault("window.width", defaults.Window.Width)
	m.viper.SetDefault("window.height", defaults.Window.Height)
	m.viper.SetDefault("window.border_width", defaults.Window.BorderWidth)

	m.viper.SetDefault("widgets.button_label", defaults.Widgets.ButtonLabel)
	m.viper.SetDefault("widgets.check_label", defaults.Widgets.CheckLabel)
	m.viper.SetDefault("widgets.dialog_text", defaults.Widgets.DialogText)
	m.viper.SetDefault("widgets.shortcut_folders", defaults.Widgets.ShortcutFolders)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("thread_checks", defaults.ThreadChecks)
}

// GetConfigFile returns the path to the configuration file being used, "" when
// running on defaults.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// WriteDefault writes the default configuration as TOML to dir/config.toml and
// returns the path. An existing file is left alone unless force is set.
func WriteDefault(dir string, force bool) (string, error) {
	path := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(path); err == nil && !force {
		return path, fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", err
	}

	data, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return "", fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return path, nil
}
