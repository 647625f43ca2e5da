package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTheme(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write theme file: %v", err)
	}
	return path
}

func TestThemeFileLoading(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LIFEOS_THEME_FILE", writeTheme(t, `theme:
  accent: "#FF0000"
  create: "#00FF00"
`))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ColorScheme.Accent != "#FF0000" {
		t.Errorf("Accent = %s, want #FF0000", cfg.ColorScheme.Accent)
	}
	if cfg.ColorScheme.Create != "#00FF00" {
		t.Errorf("Create = %s, want #00FF00", cfg.ColorScheme.Create)
	}
	if cfg.ColorScheme.Delete != DefaultColorScheme().Delete {
		t.Errorf("Delete = %s, want default", cfg.ColorScheme.Delete)
	}
}

func TestThemeFilePresetReplacesBase(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LIFEOS_THEME_FILE", writeTheme(t, "theme:\n  preset: wave\n"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ColorScheme.Preset != "wave" {
		t.Errorf("Preset = %s, want wave", cfg.ColorScheme.Preset)
	}
	if cfg.ColorScheme.Accent != "#957FB8" {
		t.Errorf("Accent = %s, want wave accent", cfg.ColorScheme.Accent)
	}
}

func TestThemeFileMissingIsIgnored(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LIFEOS_THEME_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.ColorScheme.Accent != DefaultColorScheme().Accent {
		t.Errorf("Accent = %s, want default", cfg.ColorScheme.Accent)
	}
}
