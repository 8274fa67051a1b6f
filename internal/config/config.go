package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// AppName is used for the config directory, env prefix and default log file.
const AppName = "clubhouse"

// Config represents the complete clubhouse configuration
type Config struct {
	Display DisplayConfig `mapstructure:"display"`
	Menu    MenuConfig    `mapstructure:"menu"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// DisplayConfig controls how teams are printed
type DisplayConfig struct {
	// Theme is the color theme name, built-in or a custom theme file (default: "default")
	Theme string `mapstructure:"theme"`
	// Width caps the width of printed lines; 0 detects the terminal width
	Width int `mapstructure:"width"`
	// ShowStatistics prints each team's win/loss/draw record (default: true)
	ShowStatistics bool `mapstructure:"show_statistics"`
	// ShowKind prints whether a team is professional or amateur (default: true)
	ShowKind bool `mapstructure:"show_kind"`
}

// MenuConfig controls the interactive menu
type MenuConfig struct {
	// Welcome prints the welcome banner above every menu (default: true)
	Welcome bool `mapstructure:"welcome"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// File is the log file path; empty means <config dir>/clubhouse.log
	File string `mapstructure:"file"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of backup log files to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups"`
}

// ResolveFile returns the log file path, falling back to the config directory.
func (l *LoggingConfig) ResolveFile() string {
	if l.File == "" {
		return filepath.Join(ConfigDir(), AppName+".log")
	}
	if rest, ok := strings.CutPrefix(l.File, "~/"); ok {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, rest)
		}
	}
	return l.File
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Theme:          "default",
			Width:          0, // Detect from terminal
			ShowStatistics: true,
			ShowKind:       true,
		},
		Menu: MenuConfig{
			Welcome: true,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			File:       "",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("display.theme", defaults.Display.Theme)
	viper.SetDefault("display.width", defaults.Display.Width)
	viper.SetDefault("display.show_statistics", defaults.Display.ShowStatistics)
	viper.SetDefault("display.show_kind", defaults.Display.ShowKind)

	viper.SetDefault("menu.welcome", defaults.Menu.Welcome)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.file", defaults.Logging.File)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling or validation fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Keys maps every settable key to its value type ("string", "bool" or "int").
func Keys() map[string]string {
	return map[string]string{
		"display.theme":           "string",
		"display.width":           "int",
		"display.show_statistics": "bool",
		"display.show_kind":       "bool",
		"menu.welcome":            "bool",
		"logging.enabled":         "bool",
		"logging.level":           "string",
		"logging.file":            "string",
		"logging.max_size_mb":     "int",
		"logging.max_backups":     "int",
	}
}
