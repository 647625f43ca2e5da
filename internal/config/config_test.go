package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.AddItem != "a" {
		t.Errorf("Default AddItem key = %s, want a", defaults.AddItem)
	}
	if defaults.PickUp != " " {
		t.Errorf("Default PickUp key = %q, want space", defaults.PickUp)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LIFEOS_THEME_FILE", "")
	t.Setenv("LIFEOS_DB", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.ColorScheme.Preset != "default" {
		t.Errorf("Preset = %s, want default", cfg.ColorScheme.Preset)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info", cfg.LogLevel)
	}
	if cfg.DefaultTab != "tasks" {
		t.Errorf("DefaultTab = %s, want tasks", cfg.DefaultTab)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("LIFEOS_THEME_FILE", "")
	t.Setenv("LIFEOS_DB", "")

	configDir := filepath.Join(tempDir, "lifeos")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configContent := `key_mappings:
  quit: "x"
theme:
  preset: monochrome
  accent: "#123456"
data_path: /tmp/lifeos-test.db
log_level: debug
default_tab: notes
`
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Quit = %s, want x", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.AddItem != "a" {
		t.Errorf("AddItem = %s, want default a", cfg.KeyMappings.AddItem)
	}
	if cfg.ColorScheme.Accent != "#123456" {
		t.Errorf("Accent = %s, want #123456", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Title != MonochromeColorScheme().Title {
		t.Errorf("Title = %s, want monochrome preset value", cfg.ColorScheme.Title)
	}
	if cfg.DataPath != "/tmp/lifeos-test.db" {
		t.Errorf("DataPath = %s", cfg.DataPath)
	}
	if cfg.LogLevel != "debug" || cfg.DefaultTab != "notes" {
		t.Errorf("LogLevel/DefaultTab = %s/%s, want debug/notes", cfg.LogLevel, cfg.DefaultTab)
	}
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv("LIFEOS_THEME_FILE", "")

	configDir := filepath.Join(tempDir, "lifeos")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	content := "log_level: loud\ndefault_tab: calendar\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.LogLevel != "info" || cfg.DefaultTab != "tasks" {
		t.Errorf("expected fallbacks info/tasks, got %s/%s", cfg.LogLevel, cfg.DefaultTab)
	}
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "lifeos")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("key_mappings: [unclosed"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() should fail on malformed YAML")
	}
}

func TestDBEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LIFEOS_DB", "/data/elsewhere.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.DataPath != "/data/elsewhere.db" {
		t.Errorf("DataPath = %s, want LIFEOS_DB value", cfg.DataPath)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LIFEOS_THEME_FILE", "")
	t.Setenv("LIFEOS_DB", "")

	cfg := Default()
	cfg.KeyMappings.Quit = "Q"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.KeyMappings.Quit != "Q" {
		t.Errorf("Quit = %s, want Q", loaded.KeyMappings.Quit)
	}
}
