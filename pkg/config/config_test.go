package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeRaw(path, content string) error {
	return os.WriteFile(path, []byte(content), 0600)
}

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := loadFrom(filepath.Join(t.TempDir(), ConfigName))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Translate.Engine != "GLM-4-Flash" {
		t.Errorf("default engine = %q", cfg.Translate.Engine)
	}
	if cfg.Translate.Language != "Chinese" {
		t.Errorf("default language = %q", cfg.Translate.Language)
	}
	if cfg.LLM.Model != "glm-4-flash" {
		t.Errorf("default model = %q", cfg.LLM.Model)
	}
	if cfg.Memory.Enabled {
		t.Error("translation memory should default to disabled")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigName)

	cfg := DefaultConfig()
	cfg.LLM.APIKey = "sk-test"
	cfg.Translate.Language = "Japanese"
	cfg.Memory.Enabled = true
	cfg.Memory.Path = "/tmp/mem.db"

	if err := saveTo(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := loadFrom(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.LLM.APIKey != "sk-test" {
		t.Errorf("api key = %q", got.LLM.APIKey)
	}
	if got.Translate.Language != "Japanese" {
		t.Errorf("language = %q", got.Translate.Language)
	}
	if !got.Memory.Enabled || got.Memory.Path != "/tmp/mem.db" {
		t.Errorf("memory = %+v", got.Memory)
	}
}

func TestLoadFromRejectsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigName)
	if err := saveTo(path, DefaultConfig()); err != nil {
		t.Fatalf("save: %v", err)
	}
	// Corrupt it.
	if err := writeRaw(path, "not = [valid toml"); err != nil {
		t.Fatalf("corrupt: %v", err)
	}

	if _, err := loadFrom(path); err == nil {
		t.Fatal("expected parse error")
	}
}
