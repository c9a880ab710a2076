// Package config implements Tubular's optional TOML configuration
// file, falling back to built-in defaults when no file is present:
// grouped sections, struct tags, a DefaultConfig() constructor, and a
// platform-specific config path resolver.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds Tubular's runtime-tunable settings.
type Config struct {
	// Execution settings: tick limit and grid size bounds.
	Execution struct {
		MaxTicks      uint64 `toml:"max_ticks"`
		GridMaxWidth  int    `toml:"grid_max_width"`
		GridMaxHeight int    `toml:"grid_max_height"`
		EnableStats   bool   `toml:"enable_stats"`
	} `toml:"execution"`

	// I/O settings.
	IO struct {
		EchoInput          bool `toml:"echo_input"`
		LineBufferedOutput bool `toml:"line_buffered_output"`
	} `toml:"io"`

	// Display settings: formatting for the host driver's own reporting,
	// separate from the engine's own fixed `n`/`!` output format.
	Display struct {
		NumberFormat string `toml:"number_format"` // dec, hex
	} `toml:"display"`
}

// DefaultConfig returns a Config with Tubular's built-in defaults.
func DefaultConfig() *Config {
	cfg := &Config{}

	// Execution defaults
	cfg.Execution.MaxTicks = 0 // unlimited
	cfg.Execution.GridMaxWidth = 1000
	cfg.Execution.GridMaxHeight = 1000
	cfg.Execution.EnableStats = false

	// I/O defaults
	cfg.IO.EchoInput = false
	cfg.IO.LineBufferedOutput = true

	// Display defaults
	cfg.Display.NumberFormat = "dec"

	return cfg
}

// GetConfigPath returns the platform-specific config file path
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: %APPDATA%\tubular\config.toml
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "tubular")

	case "darwin", "linux":
		// macOS/Linux: ~/.config/tubular/config.toml
		homeDir, err := os.UserHomeDir()
		if err != nil {
			// Fallback to current directory
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "tubular")

	default:
		// Unknown platform: use current directory
		return "config.toml"
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0750); err != nil {
		// If we can't create the directory, fall back to current directory
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// Load loads configuration from the default config file
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	// If file doesn't exist, return default config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	// Read and parse config file
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create file
	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	// Encode to TOML
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
