package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAlignment(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateAlignment() error {
	a := c.Alignment
	if a.WordThreshold < 0 || a.WordThreshold > 1 {
		return errors.New("alignment.word_threshold must be between 0 and 1")
	}
	if a.SegmentThreshold < 0 || a.SegmentThreshold > 1 {
		return errors.New("alignment.segment_threshold must be between 0 and 1")
	}
	if a.MinWordRatio < 0 || a.MinWordRatio > 1 {
		return errors.New("alignment.min_word_ratio must be between 0 and 1")
	}
	if a.SearchRange < 0 {
		return errors.New("alignment.search_range must not be negative")
	}
	if a.WindowSlack < 0 {
		return errors.New("alignment.window_slack must not be negative")
	}
	if a.InterpolationGapMs < 0 {
		return errors.New("alignment.interpolation_gap_ms must not be negative")
	}
	if a.SegmentSlackMs < 0 {
		return errors.New("alignment.segment_slack_ms must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
