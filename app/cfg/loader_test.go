package cfg

import (
	"testing"
)

func TestGetVersion(t *testing.T) {
	// Test default version
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}

	version := GetVersion()
	if version != "dev" && version != "unknown" {
		// This is fine, version could be set at build time
		t.Logf("Version: %s", version)
	}
}

func TestConfigFields(t *testing.T) {
	cfg := &Cfg{
		Input:           "./calendar.csv",
		InputTable:      "events",
		ConfigFile:      "./calendar.yml",
		OutputDir:       "./public",
		Serve:           true,
		Port:            "8080",
		RebuildInterval: 300,
		APIAccessKey:    "test-key",
		Timezone:        "UTC",
		Debug:           true,
		Version:         "test-version",
	}

	if cfg.Input != "./calendar.csv" {
		t.Errorf("Expected input './calendar.csv', got '%s'", cfg.Input)
	}
	if cfg.InputTable != "events" {
		t.Errorf("Expected input table 'events', got '%s'", cfg.InputTable)
	}
	if cfg.OutputDir != "./public" {
		t.Errorf("Expected output dir './public', got '%s'", cfg.OutputDir)
	}
	if !cfg.Serve {
		t.Error("Expected serve mode enabled")
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected port '8080', got '%s'", cfg.Port)
	}
	if cfg.RebuildInterval != 300 {
		t.Errorf("Expected rebuild interval 300, got %d", cfg.RebuildInterval)
	}
	if cfg.APIAccessKey != "test-key" {
		t.Errorf("Expected API key 'test-key', got '%s'", cfg.APIAccessKey)
	}
	if cfg.Version != "test-version" {
		t.Errorf("Expected version 'test-version', got '%s'", cfg.Version)
	}
}

func TestGetPanicsWhenUnloaded(t *testing.T) {
	original := globalCfg
	globalCfg = nil
	defer func() {
		globalCfg = original
		if recover() == nil {
			t.Error("Expected Get to panic before Load")
		}
	}()

	Get()
}
