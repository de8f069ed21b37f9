// Package config handles configuration management using Viper
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	// Display is the X display address, e.g. ":0". Empty means the
	// DISPLAY environment variable.
	Display string `mapstructure:"display"`

	// Buttons overrides the symbolic button name table. Entries merge
	// over the built-in defaults; an empty table keeps the defaults.
	Buttons map[string]uint8 `mapstructure:"buttons"`

	Input   InputConfig   `mapstructure:"input"`
	Bounds  BoundsConfig  `mapstructure:"bounds"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// InputConfig contains delay and sync settings for compound operations
type InputConfig struct {
	ClickDelayMs      int `mapstructure:"click_delay_ms"`       // pause between press and release of a click
	DragDelayBeforeMs int `mapstructure:"drag_delay_before_ms"` // pause between press and motion of a drag
	DragDelayAfterMs  int `mapstructure:"drag_delay_after_ms"`  // pause between motion and release of a drag
	SyncTimeoutMs     int `mapstructure:"sync_timeout_ms"`      // bound on server sync waits; 0 waits indefinitely
}

// BoundsConfig controls coordinate bounds enforcement
type BoundsConfig struct {
	Policy string `mapstructure:"policy"` // "ignore", "clamp" or "reject"
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	LogLevel string `mapstructure:"log_level"` // Override LOG_LEVEL env var
}

var (
	// DefaultConfig provides sensible defaults
	DefaultConfig = Config{
		Display: "",
		Buttons: map[string]uint8{},
		Input: InputConfig{
			ClickDelayMs:      10,
			DragDelayBeforeMs: 10,
			DragDelayAfterMs:  10,
			SyncTimeoutMs:     0,
		},
		Bounds: BoundsConfig{
			Policy: "ignore",
		},
		Logging: LoggingConfig{
			LogLevel: "",
		},
	}

	// Global config instance
	cfg *Config

	// Override config path if set
	configPathOverride string
)

// SetConfigPath allows overriding the config path
func SetConfigPath(path string) {
	configPathOverride = path
}

// Init initializes the configuration system
func Init() error {
	viper.SetConfigName("xmouse")
	viper.SetConfigType("toml")

	if configPathOverride != "" {
		viper.SetConfigFile(configPathOverride)
	} else {
		// Config paths in order of precedence
		if home := os.Getenv("HOME"); home != "" {
			viper.AddConfigPath(filepath.Join(home, ".config", "xmouse"))
		}
		viper.AddConfigPath("/etc/xmouse")
		viper.AddConfigPath(".")
	}

	// Set defaults - need to set individual fields for proper merging
	viper.SetDefault("display", DefaultConfig.Display)
	viper.SetDefault("buttons", DefaultConfig.Buttons)

	viper.SetDefault("input.click_delay_ms", DefaultConfig.Input.ClickDelayMs)
	viper.SetDefault("input.drag_delay_before_ms", DefaultConfig.Input.DragDelayBeforeMs)
	viper.SetDefault("input.drag_delay_after_ms", DefaultConfig.Input.DragDelayAfterMs)
	viper.SetDefault("input.sync_timeout_ms", DefaultConfig.Input.SyncTimeoutMs)

	viper.SetDefault("bounds.policy", DefaultConfig.Bounds.Policy)

	viper.SetDefault("logging.log_level", DefaultConfig.Logging.LogLevel)

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, use defaults
	}

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	return nil
}

// Get returns the current configuration
func Get() *Config {
	if cfg == nil {
		// Return defaults if not initialized
		return &DefaultConfig
	}
	return cfg
}

// Set sets the current configuration (for testing)
func Set(c *Config) {
	cfg = c
}

// Save saves the current configuration to file
func Save() error {
	configPath := GetConfigPath()

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	if configPathOverride != "" {
		return configPathOverride
	}

	// Check if config file is already loaded
	if viper.ConfigFileUsed() != "" {
		return viper.ConfigFileUsed()
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "/etc/xmouse/xmouse.toml"
	}

	return filepath.Join(home, ".config", "xmouse", "xmouse.toml")
}
