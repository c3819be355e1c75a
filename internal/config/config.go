// ABOUTME: fitplan configuration management with backend selection.
// ABOUTME: Loads the JSON config file, applies .env and FITPLAN_* overrides, and opens storage.

package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/harperreed/fitplan/internal/charm"
	"github.com/harperreed/fitplan/internal/logging"
	"github.com/harperreed/fitplan/internal/storage"
	"github.com/joho/godotenv"
)

const (
	BackendSQLite = "sqlite"
	BackendCharm  = "charm"

	defaultRecommendLimit = 3
	defaultWeightKg       = 70
)

// Config stores fitplan configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default) or "charm".
	Backend string `json:"backend,omitempty" env:"FITPLAN_BACKEND"`

	// DataDir is the root directory for data storage.
	// SQLite puts fitplan.db here. Supports ~ expansion. Defaults to ~/.local/share/fitplan.
	DataDir string `json:"data_dir,omitempty" env:"FITPLAN_DATA_DIR"`

	// DefaultWeightKg is used for calorie estimates when no weight is known.
	DefaultWeightKg float64 `json:"default_weight_kg,omitempty" env:"FITPLAN_DEFAULT_WEIGHT_KG"`

	// RecommendLimit caps how many workouts `recommend` suggests.
	RecommendLimit int `json:"recommend_limit,omitempty" env:"FITPLAN_RECOMMEND_LIMIT"`

	LogLevel string `json:"log_level,omitempty" env:"FITPLAN_LOG_LEVEL"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return BackendSQLite
	}
	return strings.ToLower(c.Backend)
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetDefaultWeightKg returns the fallback body weight for estimates.
func (c *Config) GetDefaultWeightKg() float64 {
	if c.DefaultWeightKg <= 0 {
		return defaultWeightKg
	}
	return c.DefaultWeightKg
}

// GetRecommendLimit returns the number of workouts to recommend.
func (c *Config) GetRecommendLimit() int {
	if c.RecommendLimit <= 0 {
		return defaultRecommendLimit
	}
	return c.RecommendLimit
}

// GetLogLevel parses LogLevel, falling back to info on bad input.
func (c *Config) GetLogLevel() slog.Level {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage creates a Repository implementation based on the configured backend.
func (c *Config) OpenStorage() (storage.Repository, error) {
	backend := c.GetBackend()
	dataDir := c.GetDataDir()

	switch backend {
	case BackendSQLite:
		return storage.Open(filepath.Join(dataDir, "fitplan.db"))
	case BackendCharm:
		client, err := charm.InitClient()
		if err != nil {
			return nil, fmt.Errorf("open charm backend: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "fitplan", "config.json")
}

// Load reads config from disk, then applies environment overrides.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	cfg, err := loadFile(GetConfigPath())
	if err != nil {
		return nil, err
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
