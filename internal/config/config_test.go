// ABOUTME: Tests for fitplan configuration management.
// ABOUTME: Covers load, save, defaults, env overrides, backend selection, and path expansion.
package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// isolate points config lookups at a fresh temp dir and clears FITPLAN_* overrides.
func isolate(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	for _, k := range []string{
		"FITPLAN_BACKEND", "FITPLAN_DATA_DIR", "FITPLAN_DEFAULT_WEIGHT_KG",
		"FITPLAN_RECOMMEND_LIMIT", "FITPLAN_LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}
	t.Chdir(tmpDir)
	return tmpDir
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetBackend(); got != BackendSQLite {
		t.Errorf("GetBackend() = %q, want %q", got, BackendSQLite)
	}
	if got := cfg.GetDefaultWeightKg(); got != 70 {
		t.Errorf("GetDefaultWeightKg() = %v, want 70", got)
	}
	if got := cfg.GetRecommendLimit(); got != 3 {
		t.Errorf("GetRecommendLimit() = %d, want 3", got)
	}
	if got := cfg.GetLogLevel(); got != slog.LevelInfo {
		t.Errorf("GetLogLevel() = %v, want info", got)
	}
	if got := cfg.GetDataDir(); got == "" {
		t.Error("GetDataDir() returned empty string")
	}
}

func TestExplicitValues(t *testing.T) {
	cfg := &Config{Backend: "Charm", DataDir: "/tmp/fitplan-test", DefaultWeightKg: 82, RecommendLimit: 5, LogLevel: "debug"}
	if got := cfg.GetBackend(); got != BackendCharm {
		t.Errorf("GetBackend() = %q, want %q", got, BackendCharm)
	}
	if got := cfg.GetDataDir(); got != "/tmp/fitplan-test" {
		t.Errorf("GetDataDir() = %q", got)
	}
	if got := cfg.GetDefaultWeightKg(); got != 82 {
		t.Errorf("GetDefaultWeightKg() = %v, want 82", got)
	}
	if got := cfg.GetRecommendLimit(); got != 5 {
		t.Errorf("GetRecommendLimit() = %d, want 5", got)
	}
	if got := cfg.GetLogLevel(); got != slog.LevelDebug {
		t.Errorf("GetLogLevel() = %v, want debug", got)
	}
}

func TestBadLogLevelFallsBack(t *testing.T) {
	cfg := &Config{LogLevel: "chatty"}
	if got := cfg.GetLogLevel(); got != slog.LevelInfo {
		t.Errorf("GetLogLevel() = %v, want info", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"/tmp/foo", "/tmp/foo"},
		{"~", home},
		{"~/data/fitplan", filepath.Join(home, "data/fitplan")},
		{"data/fitplan", "data/fitplan"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetDataDirExpandsTilde(t *testing.T) {
	home, _ := os.UserHomeDir()

	cfg := &Config{DataDir: "~/fitplan-data"}
	want := filepath.Join(home, "fitplan-data")
	if got := cfg.GetDataDir(); got != want {
		t.Errorf("GetDataDir() = %q, want %q", got, want)
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg.Backend != "" || cfg.DataDir != "" {
		t.Errorf("Expected empty config, got %+v", cfg)
	}
}

func TestSaveAndLoad(t *testing.T) {
	isolate(t)

	cfg := &Config{Backend: "charm", DataDir: "/tmp/fitplan-data", RecommendLimit: 4}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("loaded %+v, want %+v", loaded, cfg)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	isolate(t)

	if err := (&Config{Backend: "charm", RecommendLimit: 4}).Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	t.Setenv("FITPLAN_BACKEND", "sqlite")
	t.Setenv("FITPLAN_DEFAULT_WEIGHT_KG", "64.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Backend != "sqlite" {
		t.Errorf("Backend = %q, want sqlite", cfg.Backend)
	}
	if cfg.DefaultWeightKg != 64.5 {
		t.Errorf("DefaultWeightKg = %v, want 64.5", cfg.DefaultWeightKg)
	}
	if cfg.RecommendLimit != 4 {
		t.Errorf("RecommendLimit = %d, want 4 from file", cfg.RecommendLimit)
	}
}

func TestDotEnvFile(t *testing.T) {
	dir := isolate(t)
	// godotenv never overrides a variable that is already set, even to "".
	os.Unsetenv("FITPLAN_LOG_LEVEL")

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("FITPLAN_LOG_LEVEL=warn\n"), 0600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
}

func TestEnvInvalidNumber(t *testing.T) {
	isolate(t)
	t.Setenv("FITPLAN_RECOMMEND_LIMIT", "many")

	if _, err := Load(); err == nil {
		t.Error("Expected error for non-numeric FITPLAN_RECOMMEND_LIMIT")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "nonexistent"))

	if err := (&Config{Backend: "sqlite"}).Save(); err != nil {
		t.Fatalf("Save() should create directory: %v", err)
	}

	configDir := filepath.Join(tmpDir, "nonexistent", "fitplan")
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		t.Error("Expected config directory to be created")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := isolate(t)

	configDir := filepath.Join(tmpDir, "fitplan")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.json"), []byte("invalid json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid JSON config")
	}
}

func TestGetConfigPath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	want := filepath.Join(tmpDir, "fitplan", "config.json")
	if got := GetConfigPath(); got != want {
		t.Errorf("GetConfigPath() = %q, want %q", got, want)
	}
}

func TestOpenStorageSQLite(t *testing.T) {
	tmpDir := t.TempDir()

	for _, backend := range []string{"", "sqlite"} {
		cfg := &Config{Backend: backend, DataDir: tmpDir}
		repo, err := cfg.OpenStorage()
		if err != nil {
			t.Fatalf("OpenStorage(%q) failed: %v", backend, err)
		}
		repo.Close()
	}

	if _, err := os.Stat(filepath.Join(tmpDir, "fitplan.db")); os.IsNotExist(err) {
		t.Error("Expected fitplan.db to be created")
	}
}

func TestOpenStorageInvalidBackend(t *testing.T) {
	cfg := &Config{Backend: "invalid", DataDir: "/tmp"}

	if _, err := cfg.OpenStorage(); err == nil {
		t.Error("Expected error for invalid backend")
	}
}

func TestConfigJSONOmitsEmpty(t *testing.T) {
	data, err := json.Marshal(&Config{})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("Expected empty JSON object, got %s", string(data))
	}
}
