package overlay

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds editor settings consumed by the rendering core.
type Config struct {
	Sprites SpritesConfig `yaml:"sprites"`
	Display DisplayConfig `yaml:"display"`
	Logging LoggingConfig `yaml:"logging"`
}

// SpritesConfig holds sprite image lookup settings.
type SpritesConfig struct {
	// BaseFolder is the built-in sprite image folder, searched last.
	BaseFolder string `yaml:"base_folder"`
	// OverrideFolders are extra folders searched most-recently-added first.
	OverrideFolders []string `yaml:"override_folders"`
	// TilesetCatalog is the path to the tileset name catalog.
	TilesetCatalog string `yaml:"tileset_catalog"`
}

// DisplayConfig holds rendering settings.
type DisplayConfig struct {
	// OutlineColor is the shared overlay outline color as RGBA components.
	OutlineColor [4]uint8 `yaml:"outline_color"`
	// RealView enables realistic overlay previews at startup.
	RealView bool `yaml:"real_view"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Sprites: SpritesConfig{
			BaseFolder:     filepath.Join("data", "sprites"),
			TilesetCatalog: filepath.Join("data", "tilesets.yaml"),
		},
		Display: DisplayConfig{
			OutlineColor: [4]uint8{255, 255, 255, 80},
			RealView:     false,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration with priority: defaults < file. An empty
// path searches the standard locations; a missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if err := loadConfigFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./overlay.yaml",
		filepath.Join(ConfigDir(), "overlay.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Overlay")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Overlay")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "overlay")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "overlay")
	}
}

// loadConfigFile loads config from a YAML file, merging with existing values.
func loadConfigFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
