package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"roomgrid/grid"
	"roomgrid/log"
)

const ConfigFileName = "config.json"

// GetConfigDir returns the path to the application's configuration directory.
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, ".roomgrid"), nil
}

// Config represents the application configuration.
type Config struct {
	// Scenario is the path of the scenario file replayed at startup.
	// Empty means the built-in demo.
	Scenario string `json:"scenario"`

	// ShowPlaceholders controls whether participants without active video
	// get a placeholder tile. When false only live tracks occupy slots.
	ShowPlaceholders bool `json:"show_placeholders"`

	// SwipeThreshold is the horizontal drag distance, in cells, that
	// counts as a page swipe.
	SwipeThreshold int `json:"swipe_threshold"`

	// TickMillis is the scenario replay tick interval.
	TickMillis int `json:"tick_ms"`

	// CustomLayouts, when non-empty, replaces the built-in layout
	// catalog. Must be ordered by ascending capacity.
	CustomLayouts []grid.LayoutDefinition `json:"custom_layouts,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ShowPlaceholders: true,
		SwipeThreshold:   3,
		TickMillis:       250,
	}
}

// Catalog returns the layout catalog the config selects: the custom one if
// present and valid, otherwise the built-in default. An invalid custom
// catalog is logged and ignored rather than failing startup.
func (c *Config) Catalog() grid.Catalog {
	if len(c.CustomLayouts) == 0 {
		return grid.DefaultCatalog()
	}
	custom := grid.Catalog(c.CustomLayouts)
	if err := custom.Validate(); err != nil {
		log.WarningLog.Printf("ignoring custom layouts: %v", err)
		return grid.DefaultCatalog()
	}
	return custom
}

// LoadConfig loads the configuration, creating the default one on first
// run. Any load error degrades to defaults; the viewer must come up.
func LoadConfig() *Config {
	configPath, err := GetConfigPath()
	if err != nil {
		log.ErrorLog.Printf("failed to get config path: %v", err)
		return DefaultConfig()
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			defaultCfg := DefaultConfig()
			if saveErr := SaveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}
		log.WarningLog.Printf("failed to read config file: %v", err)
		return DefaultConfig()
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.ErrorLog.Printf("failed to parse config file: %v", err)
		return DefaultConfig()
	}
	if cfg.SwipeThreshold < 1 {
		cfg.SwipeThreshold = DefaultConfig().SwipeThreshold
	}
	if cfg.TickMillis < 1 {
		cfg.TickMillis = DefaultConfig().TickMillis
	}
	return &cfg
}

// GetConfigPath returns the full path of the config file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, ConfigFileName), nil
}

// SaveConfig writes the configuration under the config file lock so
// concurrent invocations do not interleave writes.
func SaveConfig(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	lock := NewFileLock(configPath)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock config: %w", err)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			log.WarningLog.Printf("failed to unlock config: %v", err)
		}
	}()

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
