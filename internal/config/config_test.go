package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Provider != "claude" {
		t.Errorf("Provider = %q, want claude", cfg.Provider)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %q, want text", cfg.Format)
	}
	if cfg.TimeoutSeconds != 300 {
		t.Errorf("TimeoutSeconds = %d, want 300", cfg.TimeoutSeconds)
	}
	if !cfg.Privacy.RedactSecrets {
		t.Error("RedactSecrets should default to true")
	}
	if cfg.OllamaHost != "" {
		t.Errorf("OllamaHost = %q, want empty (router applies the default)", cfg.OllamaHost)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("FACET_PROVIDER", "")
	t.Setenv("FACET_MODEL", "")
	t.Setenv("FACET_FORMAT", "")
	t.Setenv("FACET_TIMEOUT", "")
	t.Setenv("OLLAMA_HOST", "")

	if err := Save(Config{Provider: "gemini", Format: "json"}); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	t.Setenv("FACET_PROVIDER", "ollama")
	t.Setenv("FACET_MODEL", "codellama:7b")
	t.Setenv("OLLAMA_HOST", "http://192.168.1.5:11434")
	t.Setenv("FACET_TIMEOUT", "60")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Provider != "ollama" {
		t.Errorf("Provider = %q, want env value ollama", cfg.Provider)
	}
	if cfg.Model != "codellama:7b" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.OllamaHost != "http://192.168.1.5:11434" {
		t.Errorf("OllamaHost = %q", cfg.OllamaHost)
	}
	if cfg.TimeoutSeconds != 60 {
		t.Errorf("TimeoutSeconds = %d, want 60", cfg.TimeoutSeconds)
	}
	// File value survives where env is silent
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want file value json", cfg.Format)
	}
}

func TestLoad_FlagOverridesEverything(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("FACET_PROVIDER", "gemini")
	t.Setenv("FACET_MODEL", "")
	t.Setenv("FACET_FORMAT", "")
	t.Setenv("FACET_TIMEOUT", "")
	t.Setenv("OLLAMA_HOST", "")

	cfg, err := Load(map[string]string{"provider": "codex", "timeoutSeconds": "10"})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Provider != "codex" {
		t.Errorf("Provider = %q, want flag value codex", cfg.Provider)
	}
	if cfg.TimeoutSeconds != 10 {
		t.Errorf("TimeoutSeconds = %d, want 10", cfg.TimeoutSeconds)
	}
}

func TestSaveLoadFile_RoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	want := Default()
	want.Provider = "ollama"
	want.Model = "llama3"
	if err := Save(want); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	got, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if got.Provider != "ollama" || got.Model != "llama3" {
		t.Errorf("round trip = %+v", got)
	}

	path, _ := ConfigPath()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file missing: %v", err)
	}
	if filepath.Base(path) != "config.json" {
		t.Errorf("config file = %q", path)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile should not error on missing file: %v", err)
	}
	if cfg.Provider != "" {
		t.Errorf("missing file should yield zero config, got %+v", cfg)
	}
}

func TestSetField(t *testing.T) {
	cfg := Default()

	if err := SetField(&cfg, "provider", "gemini"); err != nil {
		t.Fatalf("SetField error: %v", err)
	}
	if cfg.Provider != "gemini" {
		t.Errorf("Provider = %q", cfg.Provider)
	}

	if err := SetField(&cfg, "timeoutSeconds", "45"); err != nil {
		t.Fatalf("SetField error: %v", err)
	}
	if cfg.TimeoutSeconds != 45 {
		t.Errorf("TimeoutSeconds = %d", cfg.TimeoutSeconds)
	}

	if err := SetField(&cfg, "timeoutSeconds", "abc"); err == nil {
		t.Error("expected error for non-integer timeoutSeconds")
	}
	if err := SetField(&cfg, "bogus", "x"); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestProviderSpec(t *testing.T) {
	tests := []struct {
		provider string
		model    string
		want     string
	}{
		{"claude", "", "claude"},
		{"ollama", "llama3", "ollama:llama3"},
		{"ollama", "codellama:7b", "ollama:codellama:7b"},
	}
	for _, tt := range tests {
		cfg := Config{Provider: tt.provider, Model: tt.model}
		if got := cfg.ProviderSpec(); got != tt.want {
			t.Errorf("ProviderSpec() = %q, want %q", got, tt.want)
		}
	}
}
