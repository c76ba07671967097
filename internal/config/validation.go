package config

import (
	"errors"
	"fmt"
	"path/filepath"
)

var (
	ErrInvalid      = errors.New("config: invalid value")
	ErrConfigExists = errors.New("config: file already exists")
	ErrNoConfigFile = errors.New("config: no config file to watch")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...)
}

// Validate reports every invalid value, joined.
func Validate(config *Config) error {
	var errs []error

	if config.Window.Width < 1 || config.Window.Height < 1 {
		errs = append(errs, invalid("window size must be positive (got %dx%d)", config.Window.Width, config.Window.Height))
	}
	if config.Window.BorderWidth < 0 {
		errs = append(errs, invalid("window.border_width must be non-negative"))
	}
	if config.Widgets.ButtonLabel == "" {
		errs = append(errs, invalid("widgets.button_label cannot be empty"))
	}

	for _, f := range config.Widgets.ShortcutFolders {
		if !filepath.IsAbs(f) {
			errs = append(errs, invalid("widgets.shortcut_folders entry %q must be an absolute path", f))
		}
	}

	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		errs = append(errs, invalid("logging.level must be one of: trace, debug, info, warn, error (got: %s)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, invalid("logging.format must be 'console' or 'json' (got: %s)", config.Logging.Format))
	}

	return errors.Join(errs...)
}
