package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("got log level %q", cfg.LogLevel)
	}
	if cfg.TickHz != DefaultTickHz {
		t.Errorf("got tick rate %d", cfg.TickHz)
	}
	if cfg.MonitorPort != DefaultMonitorPort {
		t.Errorf("got monitor port %q", cfg.MonitorPort)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pathsense.yaml")
	data := []byte("log_level: debug\ntick_hz: 60\ntrace: walk.yaml\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("got log level %q", cfg.LogLevel)
	}
	if cfg.TickHz != 60 {
		t.Errorf("got tick rate %d", cfg.TickHz)
	}
	if cfg.TracePath != "walk.yaml" {
		t.Errorf("got trace %q", cfg.TracePath)
	}
	// Unset fields keep their defaults.
	if cfg.MonitorPort != DefaultMonitorPort {
		t.Errorf("got monitor port %q", cfg.MonitorPort)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pathsense.yaml")
	if err := os.WriteFile(path, []byte("log_level: warn\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATHSENSE_LOG_LEVEL", "error")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("got log level %q, want env override", cfg.LogLevel)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/pathsense.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}
