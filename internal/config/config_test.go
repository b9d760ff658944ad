package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Error("exists should be false for a missing file")
	}
	if cfg.Transcriber.Language != "he" {
		t.Errorf("language = %q, want he", cfg.Transcriber.Language)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("format = %q, want console", cfg.Logging.Format)
	}
	if strings.Contains(cfg.Paths.DataDir, "~") {
		t.Errorf("data_dir not expanded: %q", cfg.Paths.DataDir)
	}
}

func TestLoadOverrides(t *testing.T) {
	content := `
[alignment]
word_threshold = 0.5
search_range = 50

[logging]
level = "debug"
`
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Errorf("exists=%v resolved=%q", exists, resolved)
	}
	opts := cfg.AlignOptions()
	if opts.WordThreshold != 0.5 {
		t.Errorf("word threshold = %f, want 0.5", opts.WordThreshold)
	}
	if opts.SearchRange != 50 {
		t.Errorf("search range = %d, want 50", opts.SearchRange)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"threshold out of range", "[alignment]\nword_threshold = 1.5\n"},
		{"negative search range", "[alignment]\nsearch_range = -1\n"},
		{"bad log format", "[logging]\nformat = \"xml\"\n"},
		{"bad log level", "[logging]\nlevel = \"verbose\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, _, _, err := Load(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSampleConfigParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(Sample()), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	if _, _, _, err := Load(path); err != nil {
		t.Fatalf("sample config must load cleanly: %v", err)
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Paths.DataDir = filepath.Join(dir, "data")
	cfg.Paths.LogDir = filepath.Join(dir, "logs")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, p := range []string{cfg.Paths.DataDir, cfg.Paths.LogDir} {
		if info, err := os.Stat(p); err != nil || !info.IsDir() {
			t.Errorf("directory %q not created", p)
		}
	}
}
