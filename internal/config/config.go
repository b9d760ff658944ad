package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"makhela/internal/align"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	DataDir       string `toml:"data_dir"`
	LogDir        string `toml:"log_dir"`
	LyricsDir     string `toml:"lyrics_dir"`
	TranscriptDir string `toml:"transcript_dir"`
}

// Alignment contains the forced-alignment tuning knobs. Zero values fall
// back to the calibrated defaults.
type Alignment struct {
	WordThreshold      float64 `toml:"word_threshold"`
	SegmentThreshold   float64 `toml:"segment_threshold"`
	SearchRange        int     `toml:"search_range"`
	WindowSlack        int     `toml:"window_slack"`
	MinWordRatio       float64 `toml:"min_word_ratio"`
	InterpolationGapMs int     `toml:"interpolation_gap_ms"`
	SegmentSlackMs     int     `toml:"segment_slack_ms"`
}

// Transcriber describes the external speech-to-text engine whose output
// files makhela consumes.
type Transcriber struct {
	Model    string `toml:"model"`
	Language string `toml:"language"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for makhela.
type Config struct {
	Paths       Paths       `toml:"paths"`
	Alignment   Alignment   `toml:"alignment"`
	Transcriber Transcriber `toml:"transcriber"`
	Logging     Logging     `toml:"logging"`
}

// AlignOptions converts the alignment section into engine options.
func (c *Config) AlignOptions() align.Options {
	return align.Options{
		WordThreshold:      c.Alignment.WordThreshold,
		SegmentThreshold:   c.Alignment.SegmentThreshold,
		SearchRange:        c.Alignment.SearchRange,
		WindowSlack:        c.Alignment.WindowSlack,
		MinWordRatio:       c.Alignment.MinWordRatio,
		InterpolationGapMs: c.Alignment.InterpolationGapMs,
		SegmentSlackMs:     c.Alignment.SegmentSlackMs,
	}
}

// Sample returns the embedded sample configuration file contents.
func Sample() string {
	return sampleConfig
}

// CreateSample writes the embedded sample configuration to target.
func CreateSample(target string) error {
	return os.WriteFile(target, []byte(sampleConfig), 0o644)
}

// ExpandPath expands a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/makhela/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The bool reports
// whether a file was actually found at the resolved path.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("makhela.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories makhela writes to.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", nil
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if trimmed == "~" {
			return home, nil
		}
		return filepath.Join(home, trimmed[2:]), nil
	}
	return filepath.Abs(trimmed)
}
