package config

import (
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", c.LogLevel)
	}
	if c.Theme.Accent == "" {
		t.Error("default theme should have colors")
	}
}

func TestEnvOverridesDataDir(t *testing.T) {
	t.Setenv(DataDirEnv, "/tmp/crewdeck-test")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.DataDir != "/tmp/crewdeck-test" {
		t.Errorf("DataDir = %q, want env override", c.DataDir)
	}
	if c.DatabasePath() != filepath.Join("/tmp/crewdeck-test", "crewdeck.db") {
		t.Errorf("DatabasePath = %q", c.DatabasePath())
	}
	if c.LogPath() != filepath.Join("/tmp/crewdeck-test", "logs", "crewdeck.log") {
		t.Errorf("LogPath = %q", c.LogPath())
	}
}

func TestThemeMergeDefaults(t *testing.T) {
	theme := Theme{Accent: "#FFFFFF"}
	theme.mergeDefaults()

	if theme.Accent != "#FFFFFF" {
		t.Error("user-set color should survive the merge")
	}
	if theme.Error == "" {
		t.Error("unset colors should fall back to defaults")
	}
}
