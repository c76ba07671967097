package config

// Default configuration constants
const (
	defaultWidth       = 350
	defaultHeight      = 70
	defaultBorderWidth = 10
)

// DefaultConfig returns the default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:       "First GTK+ Program",
			Width:       defaultWidth,
			Height:      defaultHeight,
			BorderWidth: defaultBorderWidth,
		},
		Widgets: WidgetsConfig{
			ButtonLabel:     "Click me!",
			CheckLabel:      "Exit",
			DialogText:      "This is a trap !",
			ShortcutFolders: []string{"/tmp"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
