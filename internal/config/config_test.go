package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestInit(t *testing.T) {
	t.Run("initializes with defaults when no config exists", func(t *testing.T) {
		viper.Reset()
		configPathOverride = ""

		if err := Init(); err != nil {
			t.Errorf("Init() failed: %v", err)
		}

		config := Get()
		if config == nil {
			t.Fatal("Get() returned nil after Init()")
		}

		if config.Input.ClickDelayMs != 10 {
			t.Errorf("Expected default click delay 10ms, got %d", config.Input.ClickDelayMs)
		}
		if config.Bounds.Policy != "ignore" {
			t.Errorf("Expected default bounds policy %q, got %q", "ignore", config.Bounds.Policy)
		}
		if config.Input.SyncTimeoutMs != 0 {
			t.Errorf("Expected default sync timeout 0, got %d", config.Input.SyncTimeoutMs)
		}
		if len(config.Buttons) != 0 {
			t.Errorf("Expected no default button overrides, got %v", config.Buttons)
		}
	})

	t.Run("reads button overrides from file", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "xmouse.toml")
		content := `display = ":1"

[buttons]
scroll_up = 8

[input]
click_delay_ms = 25
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		viper.Reset()
		SetConfigPath(path)
		defer SetConfigPath("")

		if err := Init(); err != nil {
			t.Fatalf("Init() failed: %v", err)
		}

		config := Get()
		if config.Display != ":1" {
			t.Errorf("Expected display %q, got %q", ":1", config.Display)
		}
		if config.Buttons["scroll_up"] != 8 {
			t.Errorf("Expected scroll_up override 8, got %d", config.Buttons["scroll_up"])
		}
		if config.Input.ClickDelayMs != 25 {
			t.Errorf("Expected click delay 25, got %d", config.Input.ClickDelayMs)
		}
		// Untouched fields keep their defaults.
		if config.Input.DragDelayBeforeMs != 10 {
			t.Errorf("Expected default drag delay 10, got %d", config.Input.DragDelayBeforeMs)
		}
	})

	t.Run("rejects invalid TOML", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "xmouse.toml")
		if err := os.WriteFile(path, []byte("[input\nclick_delay_ms = 10"), 0644); err != nil {
			t.Fatal(err)
		}

		viper.Reset()
		SetConfigPath(path)
		defer SetConfigPath("")

		if err := Init(); err == nil {
			t.Error("Init() accepted invalid TOML")
		}
	})
}

func TestGetBeforeInit(t *testing.T) {
	old := cfg
	cfg = nil
	defer func() { cfg = old }()

	config := Get()
	if config == nil {
		t.Fatal("Get() returned nil before Init()")
	}
	if config.Input.ClickDelayMs != DefaultConfig.Input.ClickDelayMs {
		t.Error("Get() before Init() should return defaults")
	}
}

func TestGetConfigPath(t *testing.T) {
	t.Run("override wins", func(t *testing.T) {
		SetConfigPath("/tmp/custom.toml")
		defer SetConfigPath("")

		if got := GetConfigPath(); got != "/tmp/custom.toml" {
			t.Errorf("Expected override path, got %q", got)
		}
	})

	t.Run("defaults to user config directory", func(t *testing.T) {
		viper.Reset()
		SetConfigPath("")

		home, err := os.UserHomeDir()
		if err != nil {
			t.Skip("no home directory in test environment")
		}

		want := filepath.Join(home, ".config", "xmouse", "xmouse.toml")
		if got := GetConfigPath(); got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	})
}
