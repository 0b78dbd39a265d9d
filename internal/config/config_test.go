package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "droidsdk.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Version != 1 {
		t.Fatalf("expected version 1, got %d", cfg.Version)
	}
	if cfg.SDK.Home != "" {
		t.Fatalf("expected empty home, got %q", cfg.SDK.Home)
	}
	if cfg.Job.Variables == nil || cfg.Tools.DefaultArgs == nil {
		t.Fatal("maps must be initialized by defaults")
	}
}

func TestLoadParsesFields(t *testing.T) {
	dir := t.TempDir()
	contents := `version: 1
sdk:
  home: /opt/android-sdk
  lenient: true
job:
  variables:
    BUILD_NUMBER: "42"
tools:
  default_args:
    emulator: "-no-window"
`
	path := filepath.Join(dir, "droidsdk.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SDK.Home != "/opt/android-sdk" {
		t.Fatalf("unexpected home: %q", cfg.SDK.Home)
	}
	if !cfg.SDK.Lenient {
		t.Fatal("expected lenient true")
	}
	if cfg.Job.Variables["BUILD_NUMBER"] != "42" {
		t.Fatalf("unexpected job variables: %v", cfg.Job.Variables)
	}
	if cfg.DefaultArgs("emulator") != "-no-window" {
		t.Fatalf("unexpected default args: %q", cfg.DefaultArgs("emulator"))
	}
	if cfg.DefaultArgs("adb") != "" {
		t.Fatalf("expected empty default args for adb, got %q", cfg.DefaultArgs("adb"))
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "droidsdk.yaml")
	if err := os.WriteFile(path, []byte("sdk: ["), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.SDK.Home = "/sdk"
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "droidsdk.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.SDK.Home != "/sdk" {
		t.Fatalf("round trip lost home: %q", loaded.SDK.Home)
	}
}
