package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates a configuration value is out of range or unknown.
var ErrInvalidConfig = errors.New("invalid configuration")

var (
	validLevels  = map[string]struct{}{"debug": {}, "info": {}, "warn": {}, "error": {}}
	validFormats = map[string]struct{}{"auto": {}, "console": {}, "json": {}}
)

// Validate checks the configuration for out-of-range or unknown values. It
// assumes normalize has already run.
func (c *Config) Validate() error {
	if c.Matching.FuzzyThreshold < 0 || c.Matching.FuzzyThreshold > 100 {
		return fmt.Errorf("%w: matching.fuzzy_threshold %v outside [0, 100]",
			ErrInvalidConfig, c.Matching.FuzzyThreshold)
	}
	if _, ok := validLevels[c.Logging.Level]; !ok {
		return fmt.Errorf("%w: logging.level %q (expected debug, info, warn or error)",
			ErrInvalidConfig, c.Logging.Level)
	}
	if _, ok := validFormats[c.Logging.Format]; !ok {
		return fmt.Errorf("%w: logging.format %q (expected auto, console or json)",
			ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}
