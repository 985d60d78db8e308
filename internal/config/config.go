// Package config loads the optional bain CLI configuration file.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/conn-castle/bain-installer/internal/logging"
	"github.com/conn-castle/bain-installer/internal/messages"
	"github.com/conn-castle/bain-installer/internal/preview"
)

// Config is the bain CLI configuration.
type Config struct {
	Log     LogConfig     `toml:"log"`
	Output  OutputConfig  `toml:"output"`
	Preview PreviewConfig `toml:"preview"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	// Level is a logrus level name (panic, fatal, error, warn, info, debug, trace).
	Level string `toml:"level"`
}

// OutputConfig controls terminal output.
type OutputConfig struct {
	Color bool `toml:"color"`
}

// PreviewConfig controls the tree diff printed after a selection.
type PreviewConfig struct {
	DiffLines int `toml:"diff_lines"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Log:     LogConfig{Level: logging.DefaultLevel},
		Output:  OutputConfig{Color: true},
		Preview: PreviewConfig{DiffLines: preview.DefaultMaxLines},
	}
}

// Validate checks field values. source names the file in error messages.
func (c *Config) Validate(source string) error {
	if strings.TrimSpace(c.Log.Level) == "" {
		return fmt.Errorf(messages.ConfigLogLevelRequiredFmt, source)
	}
	if _, err := logrus.ParseLevel(strings.TrimSpace(c.Log.Level)); err != nil {
		return fmt.Errorf(messages.ConfigLogLevelInvalidFmt, source, c.Log.Level)
	}
	if c.Preview.DiffLines < 0 {
		return fmt.Errorf(messages.ConfigDiffLinesInvalidFmt, source, c.Preview.DiffLines)
	}
	return nil
}
