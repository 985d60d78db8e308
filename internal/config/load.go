package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/bain-installer/internal/messages"
)

// ErrConfigValidation wraps validation failures, as opposed to TOML syntax or
// filesystem errors.
var ErrConfigValidation = errors.New("config validation failed")

// Load reads the config file at path. A missing file yields Default().
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf(messages.ConfigReadFailedFmt, path, err)
	}
	return Parse(data, path)
}

// Parse decodes TOML data over the defaults and validates the result.
// Unknown keys are rejected. source is used in error messages.
func Parse(data []byte, source string) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt, ErrConfigValidation, source, err)
	}
	if err := cfg.Validate(source); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	return cfg, nil
}

// decodeStrict re-decodes data rejecting keys that Unmarshal silently ignores.
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}
